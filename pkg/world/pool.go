package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/richarm4/sekiro-apworld/pkg/catalog"
)

// CreateItems assembles this world's share of the item pool from the
// default items of every open location. Skipped and duplicate-unique
// defaults leave a deficit that is covered by injectable items first
// and filler after that.
func (w *World) CreateItems() error {
	seen := mapset.New[string]()
	w.localPool = nil

	deficit := 0
	for _, loc := range w.UnfilledLocations() {
		if !w.IsLocationAvailable(loc.Data) {
			return fmt.Errorf("world: generation bug: unavailable location %q is unfilled", loc.Data.Name)
		}

		data, ok := w.Catalog.Items.Lookup(loc.Data.DefaultItem)
		if !ok {
			return fmt.Errorf("world: location %q has unknown default item %q", loc.Data.Name, loc.Data.DefaultItem)
		}
		switch {
		case data.Skip:
			deficit++
		case !data.Unique():
			w.localPool = append(w.localPool, newItem(data, w.Player))
		case seen.Has(data.Name):
			// Unique items appear once in the pool even when several
			// in-game locations provide them.
			deficit++
		default:
			seen.Put(data.Name)
			w.localPool = append(w.localPool, newItem(data, w.Player))
		}
	}

	injected := w.createInjectableItems(deficit)
	deficit -= len(injected)
	w.localPool = append(w.localPool, injected...)

	for i := 0; i < deficit; i++ {
		name := w.FillerItemName()
		data, _ := w.Catalog.Items.Lookup(name)
		w.localPool = append(w.localPool, newItem(data, w.Player))
	}
	return nil
}

// createInjectableItems selects up to deficit inject-flagged catalog
// items to stand in for skipped defaults, preferring progression
// ("mandatory") injectables. Mandatory injectables that don't fit the
// deficit are force-granted to the starting state instead of dropped,
// with a warning; losing one silently would break completability.
func (w *World) createInjectableItems(deficit int) []*Item {
	var mandatory, optional []catalog.ItemData
	for _, item := range w.Catalog.Items.All() {
		if !item.Inject {
			continue
		}
		if item.Classification == catalog.ClassProgression {
			mandatory = append(mandatory, item)
		} else {
			optional = append(optional, item)
		}
	}

	toInject := deficit
	if total := len(mandatory) + len(optional); toInject > total {
		toInject = total
	}

	chosen := w.sample(mandatory, min(len(mandatory), toInject))
	chosen = append(chosen, w.sample(optional, max(0, toInject-len(mandatory)))...)

	if toInject < len(mandatory) {
		chosenNames := mapset.New[string]()
		for _, item := range chosen {
			chosenNames.Put(item.Name)
		}
		for _, item := range mandatory {
			if chosenNames.Has(item.Name) {
				continue
			}
			w.Precollect(newItem(item, w.Player))
			w.log.Warn("couldn't add item to the item pool; adding it to the starting inventory instead",
				"item", item.Name, "slot", w.SlotName)
		}
	}

	items := make([]*Item, 0, len(chosen))
	for _, item := range chosen {
		items = append(items, newItem(item, w.Player))
	}
	return items
}

// sample draws k items without replacement from the world's RNG.
func (w *World) sample(items []catalog.ItemData, k int) []catalog.ItemData {
	if k <= 0 {
		return nil
	}
	out := make([]catalog.ItemData, 0, k)
	for _, i := range w.rng.Perm(len(items))[:k] {
		out = append(out, items[i])
	}
	return out
}

// FillerItemName draws a random filler item name from the catalog.
func (w *World) FillerItemName() string {
	names := w.Catalog.Items.FillerNames()
	return names[w.rng.Intn(len(names))]
}
