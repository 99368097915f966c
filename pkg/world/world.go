// Package world implements the per-player randomizer core: it builds
// the region graph from the catalog, resolves which locations are
// randomized, attaches accessibility rules, assembles the local item
// pool and routes a handful of named items before handing the rest to
// the host's fill step.
package world

import (
	"log/slog"
	"math/rand"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/richarm4/sekiro-apworld/pkg/catalog"
	"github.com/richarm4/sekiro-apworld/pkg/rules"
)

// World owns all mutable state for one player's generation. Worlds
// share nothing with each other; the catalog is read-only.
type World struct {
	Player   int
	SlotName string
	SeedName string
	Options  Options
	Catalog  *catalog.Catalog

	rng *rand.Rand
	log *slog.Logger

	regions   map[string]*Region
	entrances map[string]*Entrance
	locations map[string]*Location

	// regionOrder preserves build order so walks are deterministic.
	regionOrder []string

	createdRegions mapset.Set[string]

	// excluded is the host-visible exclusion set, consumed as fixed
	// locations absorb their own exclusion.
	excluded mapset.Set[string]

	// allExcluded keeps the original exclusion membership for item
	// rules even after excluded has been consumed or cleared.
	allExcluded mapset.Set[string]

	priority mapset.Set[string]

	// localPool is this world's share of the multiworld item pool.
	localPool []*Item

	// precollected holds items force-granted to the starting state.
	precollected []*Item

	completion rules.CollectionRule
}

// New creates an empty world for the given player. The seed must come
// from the host; every random draw during generation consumes from the
// one generator it creates, so a seed fully determines placement.
func New(cat *catalog.Catalog, player int, slotName, seedName string, opts Options, seed int64, log *slog.Logger) *World {
	if log == nil {
		log = slog.Default()
	}
	w := &World{
		Player:         player,
		SlotName:       slotName,
		SeedName:       seedName,
		Options:        opts,
		Catalog:        cat,
		rng:            rand.New(rand.NewSource(seed)),
		log:            log,
		regions:        make(map[string]*Region),
		entrances:      make(map[string]*Entrance),
		locations:      make(map[string]*Location),
		createdRegions: mapset.New[string](),
		excluded:       mapset.New[string](),
		allExcluded:    mapset.New[string](),
		priority:       mapset.New[string](),
	}
	for _, name := range opts.ExcludeLocations {
		w.excluded.Put(name)
		w.allExcluded.Put(name)
	}
	for _, name := range opts.PriorityLocations {
		w.priority.Put(name)
	}
	return w
}

// Region returns the named region, or nil.
func (w *World) Region(name string) *Region {
	return w.regions[name]
}

// Entrance returns the named entrance, or nil.
func (w *World) Entrance(name string) *Entrance {
	return w.entrances[name]
}

// Location returns the named location, or nil.
func (w *World) Location(name string) *Location {
	return w.locations[name]
}

// Regions returns every region in build order.
func (w *World) Regions() []*Region {
	out := make([]*Region, 0, len(w.regionOrder))
	for _, name := range w.regionOrder {
		out = append(out, w.regions[name])
	}
	return out
}

// Locations returns every location, walking regions in build order.
func (w *World) Locations() []*Location {
	var out []*Location
	for _, region := range w.Regions() {
		out = append(out, region.Locations...)
	}
	return out
}

// UnfilledLocations returns the open locations awaiting the fill step.
func (w *World) UnfilledLocations() []*Location {
	var out []*Location
	for _, loc := range w.Locations() {
		if !loc.Filled() {
			out = append(out, loc)
		}
	}
	return out
}

// FilledLocations returns locations that already hold an item.
func (w *World) FilledLocations() []*Location {
	var out []*Location
	for _, loc := range w.Locations() {
		if loc.Filled() {
			out = append(out, loc)
		}
	}
	return out
}

// LocalPool returns this world's remaining share of the item pool.
func (w *World) LocalPool() []*Item {
	return w.localPool
}

// Precollected returns the items force-granted to the starting state.
func (w *World) Precollected() []*Item {
	return w.precollected
}

// Precollect force-grants an item into the starting collection state.
func (w *World) Precollect(item *Item) {
	w.precollected = append(w.precollected, item)
}

// ExcludedLocations returns the current host-visible exclusion set,
// sorted for stable output.
func (w *World) ExcludedLocations() []string {
	return sortedKeys(w.excluded)
}

// AllExcludedLocations returns the retained exclusion membership used
// for item rules, sorted for stable output.
func (w *World) AllExcludedLocations() []string {
	return sortedKeys(w.allExcluded)
}

// PriorityLocations returns the host's priority set after reconciling
// it with the allow-useful restrictions, sorted for stable output.
func (w *World) PriorityLocations() []string {
	return sortedKeys(w.priority)
}

// CompletionRule returns the registered completion predicate, or nil
// if SetRules has not run.
func (w *World) CompletionRule() rules.CollectionRule {
	return w.completion
}

func sortedKeys(set mapset.Set[string]) []string {
	out := make([]string, 0, set.Size())
	set.Each(func(name string) {
		out = append(out, name)
	})
	sort.Strings(out)
	return out
}
