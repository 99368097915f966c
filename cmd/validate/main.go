// Command validate checks the authored catalog and region graph for
// authoring mistakes before they surface as generation failures.
package main

import (
	"fmt"
	"os"

	"github.com/richarm4/sekiro-apworld/pkg/catalog"
	"github.com/richarm4/sekiro-apworld/pkg/world"
)

func main() {
	validator := &CatalogValidator{}

	if err := validator.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	if len(validator.errors) > 0 {
		fmt.Fprintf(os.Stderr, "Found %d problem(s):\n", len(validator.errors))
		for _, e := range validator.errors {
			fmt.Fprintf(os.Stderr, "  - %s\n", e)
		}
		os.Exit(1)
	}

	fmt.Println("Catalog is valid!")
}

type CatalogValidator struct {
	errors []string
}

func (v *CatalogValidator) errorf(format string, args ...any) {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
}

func (v *CatalogValidator) validate() error {
	cat, err := catalog.New()
	if err != nil {
		return err
	}

	v.checkItems(cat)
	v.checkLocations(cat)
	v.checkGraph(cat)
	return nil
}

func (v *CatalogValidator) checkItems(cat *catalog.Catalog) {
	codes := make(map[int64]string)
	for _, item := range cat.Items.All() {
		if item.Code == 0 {
			v.errorf("item %q has no identity code", item.Name)
			continue
		}
		if other, dup := codes[item.Code]; dup {
			v.errorf("items %q and %q share identity code %d", other, item.Name, item.Code)
		}
		codes[item.Code] = item.Name
	}
	if len(cat.Items.FillerNames()) == 0 {
		v.errorf("catalog has no filler items")
	}
}

func (v *CatalogValidator) checkLocations(cat *catalog.Catalog) {
	codes := make(map[int64]string)
	for _, loc := range cat.Locations.All() {
		if loc.IsEvent() {
			if loc.Code != 0 {
				v.errorf("event location %q carries identity code %d", loc.Name, loc.Code)
			}
			continue
		}
		if loc.Code == 0 {
			v.errorf("location %q has no identity code", loc.Name)
			continue
		}
		if other, dup := codes[loc.Code]; dup {
			v.errorf("locations %q and %q share identity code %d", other, loc.Name, loc.Code)
		}
		codes[loc.Code] = loc.Name

		if _, ok := cat.Items.Lookup(loc.DefaultItem); !ok {
			v.errorf("location %q has unknown default item %q", loc.Name, loc.DefaultItem)
		}
		if loc.Miniboss && !loc.Drop {
			v.errorf("location %q is a miniboss reward but not marked as a drop", loc.Name)
		}
	}
}

func (v *CatalogValidator) checkGraph(cat *catalog.Catalog) {
	opts := world.DefaultOptions()
	w := world.New(cat, 1, "validate", "validate", opts, 1, nil)
	if err := w.CreateRegions(); err != nil {
		v.errorf("graph build failed: %v", err)
		return
	}
	if err := w.CreateItems(); err != nil {
		v.errorf("pool build failed: %v", err)
	}
	if err := w.SetRules(); err != nil {
		v.errorf("rule attachment failed: %v", err)
	}
	if w.CompletionRule() == nil {
		v.errorf("no completion rule registered")
	}
}
