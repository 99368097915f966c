package world

import (
	"fmt"

	"github.com/richarm4/sekiro-apworld/pkg/catalog"
)

// fillerSwapAttempts bounds the best-effort filler swap. Filler is
// never required for completion, so a bounded retry beats an exhaustive
// search here; raise it if the catalog ever grows very restrictive item
// rules.
const fillerSwapAttempts = 10

// FillLocalItem places the named pool item into a random valid location
// within the given regions. Candidates must be randomized, not missable,
// not conditional, unfilled, outside the exclusion set, pass cond if
// supplied and accept the item under their accumulated item rules.
//
// Failure to place is not fatal: the item is force-granted to the
// starting inventory, the location holding its vanilla default (if any
// and not locked) gets a best-effort filler substitute, and a warning
// is logged. The item always leaves the local pool.
func (w *World) FillLocalItem(name string, regions []string, cond func(catalog.LocationData) bool) error {
	var item *Item
	idx := -1
	for i, candidate := range w.localPool {
		if candidate.Data.Name == name {
			item, idx = candidate, i
			break
		}
	}
	if item == nil {
		return nil
	}

	var candidates []*Location
	for _, region := range regions {
		if !w.Catalog.Locations.HasRegion(region) {
			return fmt.Errorf("world: local fill for %q references unknown region %q", name, region)
		}
		for _, data := range w.Catalog.Locations.Table(region) {
			if !w.IsLocationAvailable(data) || data.Missable || data.Conditional {
				continue
			}
			if cond != nil && !cond(data) {
				continue
			}
			loc := w.locations[data.Name]
			if loc == nil || loc.Filled() || w.allExcluded.Has(data.Name) {
				continue
			}
			// Progress type isn't decided until after rules are set, so
			// the accumulated item rules are the authority here.
			if !loc.Allows(item) {
				continue
			}
			candidates = append(candidates, loc)
		}
	}

	w.localPool = append(w.localPool[:idx], w.localPool[idx+1:]...)

	if len(candidates) == 0 {
		w.log.Warn("couldn't place item in a valid location; adding it to the starting inventory instead",
			"item", name, "slot", w.SlotName)
		for _, loc := range w.Locations() {
			if loc.Data.DefaultItem == name {
				w.replaceWithFiller(loc)
				break
			}
		}
		w.Precollect(newItem(item.Data, w.Player))
		return nil
	}

	candidates[w.rng.Intn(len(candidates))].PlaceLocked(item)
	return nil
}

// replaceWithFiller tries a handful of independent random filler draws
// against the location's item rules and keeps the first that fits. If
// every attempt fails the location is left unchanged; that's fine,
// filler is never load-bearing.
func (w *World) replaceWithFiller(loc *Location) bool {
	if loc.Locked {
		return false
	}
	for i := 0; i < fillerSwapAttempts; i++ {
		data, _ := w.Catalog.Items.Lookup(w.FillerItemName())
		candidate := newItem(data, w.Player)
		if loc.Allows(candidate) {
			loc.Item = candidate
			return true
		}
	}
	return false
}
