package world

import (
	"fmt"

	"github.com/richarm4/sekiro-apworld/pkg/catalog"
)

// Edge is a directed connection between two named regions.
type Edge struct {
	From string
	To   string
}

// BuildGraph creates the named regions, resolves each region's catalog
// locations into open or locked slots and wires the edges. An edge that
// references a region not in regionNames is a catalog/graph mismatch
// and aborts the build. Cycles are permitted; the host's search engine
// treats the graph purely as a reachability structure.
func (w *World) BuildGraph(regionNames []string, edges []Edge) error {
	// Menu is the implicit root every world starts from.
	w.createRegion("Menu", nil)
	for _, name := range regionNames {
		w.createRegion(name, w.Catalog.Locations.Table(name))
	}
	for _, edge := range edges {
		if err := w.connect(edge.From, edge.To); err != nil {
			return err
		}
	}
	return nil
}

// IsLocationAvailable reports whether the location is randomized. An
// unavailable location is fixed: it keeps its vanilla item (or a pure
// event marker) and is locked during the build.
func (w *World) IsLocationAvailable(data catalog.LocationData) bool {
	if data.IsEvent() {
		return false
	}
	if w.Options.ExcludedLocationBehavior == BehaviorDoNotRandomize && w.allExcluded.Has(data.Name) {
		return false
	}
	if w.Options.MissableLocationBehavior == BehaviorDoNotRandomize && data.Missable {
		return false
	}
	return true
}

// createRegion builds one region and resolves its catalog slice into
// location instances, locking fixed locations with their default items.
func (w *World) createRegion(name string, table []catalog.LocationData) *Region {
	region := &Region{Name: name}

	for _, data := range table {
		loc := &Location{Data: data, Region: region}
		if w.IsLocationAvailable(data) {
			if data.Missable && w.Options.MissableLocationBehavior == BehaviorForbidUseful &&
				!(w.allExcluded.Has(data.Name) && w.Options.ExcludedOutranksMissable()) {
				// Excluded so the fill never puts anything important
				// here, unless the excluded axis already governs it to
				// a higher degree.
				loc.Progress = ProgressExcluded
			}
		} else {
			// Fixed: lock in the vanilla item, or a bare event marker
			// when there is none, so reachability still sees it.
			var item *Item
			if data.IsEvent() {
				item = newEventItem(data.Name, w.Player)
			} else {
				item = w.eventFor(data.DefaultItem)
			}
			loc.Event = true
			loc.PlaceLocked(item)

			// A location that can never hold a randomized item must not
			// keep blocking the fill through stale exclusion
			// bookkeeping. The retained membership survives only while
			// the missable axis outranks the excluded axis.
			if w.excluded.Has(data.Name) {
				w.excluded.Remove(data.Name)
				if !w.Options.MissableOutranksExcluded() {
					w.allExcluded.Remove(data.Name)
				}
			}
		}
		region.Locations = append(region.Locations, loc)
		w.locations[data.Name] = loc
	}

	w.regions[name] = region
	w.regionOrder = append(w.regionOrder, name)
	w.createdRegions.Put(name)
	return region
}

// eventFor creates the locked placeholder for a fixed location that
// keeps its vanilla item. The instance classifies as the catalog item
// does but carries no external code.
func (w *World) eventFor(itemName string) *Item {
	data, ok := w.Catalog.Items.Lookup(itemName)
	if !ok {
		// Normalized registries guarantee default items resolve.
		panic(fmt.Sprintf("world: fixed location references unknown item %q", itemName))
	}
	item := newItem(data, w.Player)
	item.event = true
	return item
}

// connect wires a directed entrance between two built regions.
func (w *World) connect(from, to string) error {
	return w.connectNamed(from, to, "Go To "+to)
}

// connectNamed is connect with an explicit entrance name, used for the
// Menu's New Game edge.
func (w *World) connectNamed(from, to, name string) error {
	source, ok := w.regions[from]
	if !ok {
		return fmt.Errorf("world: entrance references unknown region %q", from)
	}
	target, ok := w.regions[to]
	if !ok {
		return fmt.Errorf("world: entrance to %q references unknown region %q", from, to)
	}
	entrance := &Entrance{
		Name:   name,
		Source: source,
		Target: target,
	}
	source.Exits = append(source.Exits, entrance)
	w.entrances[entrance.Name] = entrance
	return nil
}
