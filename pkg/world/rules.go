package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/richarm4/sekiro-apworld/pkg/catalog"
	"github.com/richarm4/sekiro-apworld/pkg/rules"
)

// AddEntranceRule guards the entrance to the named region. Regions that
// were conditionally omitted from the build are silently skipped; a
// region the catalog has never heard of is an authoring error.
func (w *World) AddEntranceRule(region string, rule rules.CollectionRule) error {
	if !w.Catalog.Locations.HasRegion(region) {
		return fmt.Errorf("world: entrance rule references unknown region %q", region)
	}
	if !w.createdRegions.Has(region) {
		return nil
	}
	entrance := w.entrances["Go To "+region]
	if entrance == nil {
		return fmt.Errorf("world: region %q has no entrance", region)
	}
	entrance.Rules.Add(rule)
	return nil
}

// RequireItemForEntrance is the shorthand for gating a region behind a
// single named item. Gating on a non-progression item is a design
// error, so the item's classification is checked at build time.
func (w *World) RequireItemForEntrance(region, item string) error {
	rule, err := w.hasItemRule(item)
	if err != nil {
		return err
	}
	return w.AddEntranceRule(region, rule)
}

// AddLocationRule guards the named location if it is randomized.
func (w *World) AddLocationRule(location string, rule rules.CollectionRule) error {
	data, ok := w.Catalog.Locations.Lookup(location)
	if !ok {
		return fmt.Errorf("world: location rule references unknown location %q", location)
	}
	if !w.IsLocationAvailable(data) {
		return nil
	}
	loc := w.locations[location]
	if loc == nil {
		return nil
	}
	loc.Rules.Add(rule)
	return nil
}

// RequireItemForLocation is the shorthand for gating a location behind
// a single named progression item.
func (w *World) RequireItemForLocation(location, item string) error {
	rule, err := w.hasItemRule(item)
	if err != nil {
		return err
	}
	return w.AddLocationRule(location, rule)
}

// AddItemRule restricts what items the named location accepts, if it is
// randomized.
func (w *World) AddItemRule(location string, pred rules.ItemPredicate) error {
	data, ok := w.Catalog.Locations.Lookup(location)
	if !ok {
		return fmt.Errorf("world: item rule references unknown location %q", location)
	}
	if !w.IsLocationAvailable(data) {
		return nil
	}
	if loc := w.locations[location]; loc != nil {
		loc.ItemRules.Add(pred)
	}
	return nil
}

func (w *World) hasItemRule(item string) (rules.CollectionRule, error) {
	data, ok := w.Catalog.Items.Lookup(item)
	if !ok {
		return nil, fmt.Errorf("world: rule references unknown item %q", item)
	}
	if data.Classification != catalog.ClassProgression {
		return nil, fmt.Errorf("world: rule references item %q with classification %s, want progression",
			item, data.Classification)
	}
	return rules.Has(item), nil
}

// SetCompletionRule registers the predicate that decides when this
// world is complete. Additional calls AND onto the existing condition.
func (w *World) SetCompletionRule(rule rules.CollectionRule) {
	if w.completion == nil {
		w.completion = rule
		return
	}
	prev := w.completion
	w.completion = func(state rules.State) bool {
		return prev(state) && rule(state)
	}
}

// CanGoTo reports whether state can access the given region, via the
// host's reachability oracle.
func (w *World) CanGoTo(state rules.State, region string) bool {
	return state.CanReachRegion(region)
}

// CanGet reports whether state can access the given location, via the
// host's reachability oracle.
func (w *World) CanGet(state rules.State, location string) bool {
	return state.CanReachLocation(location)
}

// addAllowUsefulLocationRules restricts locations whose behavior axis
// is set to allow_useful. The fill engine applies a blanket
// no-advancement-no-useful policy to anything it sees as excluded, so
// instead of marking these locations excluded we attach item rules that
// reject only progression items.
func (w *World) addAllowUsefulLocationRules() error {
	allowUseful := mapset.New[string]()

	if w.Options.ExcludedLocationBehavior == BehaviorAllowUseful {
		if w.Options.MissableOutranksExcluded() {
			// The missable axis governs the overlap, so only cover the
			// non-missable excluded locations here.
			for _, loc := range w.Locations() {
				if w.allExcluded.Has(loc.Data.Name) && !loc.Data.Missable {
					allowUseful.Put(loc.Data.Name)
				}
			}
		} else {
			w.allExcluded.Each(func(name string) {
				allowUseful.Put(name)
			})
		}
	}

	if w.Options.MissableLocationBehavior == BehaviorAllowUseful {
		for _, loc := range w.Locations() {
			if loc.Data.Missable &&
				!(w.allExcluded.Has(loc.Data.Name) && w.Options.ExcludedOutranksMissable()) {
				allowUseful.Put(loc.Data.Name)
			}
		}
	}

	var err error
	allowUseful.Each(func(name string) {
		if err != nil {
			return
		}
		err = w.AddItemRule(name, func(item rules.Item) bool {
			return !item.Advancement()
		})
	})
	if err != nil {
		return err
	}

	// A location can't be prioritized for important items and
	// restricted from holding them at the same time.
	allowUseful.Each(func(name string) {
		w.priority.Remove(name)
	})

	// With the finer-grained item rules in place, the raw exclusion set
	// must not reach the fill engine, or it would reapply its blanket
	// restriction on top.
	if w.Options.ExcludedLocationBehavior == BehaviorAllowUseful {
		w.excluded = mapset.New[string]()
	}
	return nil
}
