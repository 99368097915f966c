package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/richarm4/sekiro-apworld/pkg/world"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	regionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	locationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("205")).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

var titleCaser = cases.Title(language.English)

// browserLine is one selectable row in the spoiler listing.
type browserLine struct {
	text     string
	location string // empty for region headers
	item     string
}

// BrowserUI is the BubbleTea model that runs the spoiler browser.
type BrowserUI struct {
	spoiler  *world.Spoiler
	lines    []browserLine
	cursor   int
	viewport viewport.Model
	ready    bool
	width    int
	height   int
	status   string
}

func NewBrowserUI(spoiler *world.Spoiler) BrowserUI {
	return BrowserUI{
		spoiler: spoiler,
		lines:   flatten(spoiler),
	}
}

func flatten(spoiler *world.Spoiler) []browserLine {
	var lines []browserLine
	for _, region := range spoiler.Regions {
		lines = append(lines, browserLine{text: region.Name})
		for _, loc := range region.Locations {
			item := loc.Item
			if item == "" {
				item = "(unfilled)"
			}
			var badges []string
			if loc.Event {
				badges = append(badges, titleCaser.String("event"))
			} else if loc.Locked {
				badges = append(badges, titleCaser.String("locked"))
			}
			badge := ""
			if len(badges) > 0 {
				badge = " [" + strings.Join(badges, ", ") + "]"
			}
			lines = append(lines, browserLine{
				text:     fmt.Sprintf("%s: %s%s", loc.Name, item, badge),
				location: loc.Name,
				item:     item,
			})
		}
	}
	if len(spoiler.StartingItems) > 0 {
		lines = append(lines, browserLine{text: "Starting Inventory"})
		for _, item := range spoiler.StartingItems {
			lines = append(lines, browserLine{text: item, item: item})
		}
	}
	return lines
}

func (ui BrowserUI) Init() tea.Cmd {
	return nil
}

func (ui BrowserUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ui.width = msg.Width
		ui.height = msg.Height
		if !ui.ready {
			ui.viewport = viewport.New(msg.Width, msg.Height-4)
			ui.ready = true
		} else {
			ui.viewport.Width = msg.Width
			ui.viewport.Height = msg.Height - 4
		}
		ui.viewport.SetContent(ui.renderLines())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return ui, tea.Quit
		case "up", "k":
			if ui.cursor > 0 {
				ui.cursor--
			}
		case "down", "j":
			if ui.cursor < len(ui.lines)-1 {
				ui.cursor++
			}
		case "pgup":
			ui.cursor -= ui.viewport.Height
			if ui.cursor < 0 {
				ui.cursor = 0
			}
		case "pgdown":
			ui.cursor += ui.viewport.Height
			if ui.cursor > len(ui.lines)-1 {
				ui.cursor = len(ui.lines) - 1
			}
		case "c":
			line := ui.lines[ui.cursor]
			if line.location != "" || line.item != "" {
				if err := clipboard.WriteAll(line.text); err != nil {
					ui.status = "Clipboard unavailable"
				} else {
					ui.status = "Copied to clipboard"
				}
			}
		}
		if ui.ready {
			ui.viewport.SetContent(ui.renderLines())
			ui.scrollToCursor()
		}
	}

	return ui, nil
}

func (ui *BrowserUI) scrollToCursor() {
	if ui.cursor < ui.viewport.YOffset {
		ui.viewport.SetYOffset(ui.cursor)
	} else if ui.cursor >= ui.viewport.YOffset+ui.viewport.Height {
		ui.viewport.SetYOffset(ui.cursor - ui.viewport.Height + 1)
	}
}

func (ui BrowserUI) renderLines() string {
	var b strings.Builder
	width := ui.width
	if width <= 0 {
		width = 80
	}
	for i, line := range ui.lines {
		text := wordwrap.String(line.text, width-4)
		switch {
		case i == ui.cursor:
			b.WriteString(selectedStyle.Render(text))
		case line.location == "" && line.item == "":
			b.WriteString(regionStyle.Render(text))
		case strings.HasSuffix(line.text, "(unfilled)"):
			b.WriteString(locationStyle.Render(text))
		default:
			b.WriteString(itemStyle.Render(text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (ui BrowserUI) View() string {
	if !ui.ready {
		return "Loading..."
	}

	header := titleStyle.Render(fmt.Sprintf("Spoiler: %s / %s", ui.spoiler.Seed, ui.spoiler.Slot))
	if len(ui.spoiler.Excluded) > 0 {
		header += badgeStyle.Render(fmt.Sprintf("  (%d excluded)", len(ui.spoiler.Excluded)))
	}

	footer := footerStyle.Render("↑/↓ move · c copy · q quit")
	if ui.status != "" {
		footer += "  " + statusStyle.Render(ui.status)
	}

	return fmt.Sprintf("%s\n\n%s\n%s", header, ui.viewport.View(), footer)
}
