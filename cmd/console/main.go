// Command console is a terminal browser for generated spoiler
// documents: regions, their locations and the items placed in them.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/richarm4/sekiro-apworld/pkg/world"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <spoiler.json>\n", os.Args[0])
		os.Exit(1)
	}

	spoiler, err := loadSpoiler(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load spoiler: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(NewBrowserUI(spoiler), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func loadSpoiler(path string) (*world.Spoiler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var spoiler world.Spoiler
	if err := json.Unmarshal(data, &spoiler); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &spoiler, nil
}
