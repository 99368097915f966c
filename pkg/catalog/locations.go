package catalog

import "fmt"

// LocationData describes one catalog location.
type LocationData struct {
	// Name is the unique key for this location.
	Name string

	// DefaultItem is the name of the item found here in the vanilla
	// game. Empty means this location is an event: a pure state
	// transition that auto-completes as soon as it is reachable.
	DefaultItem string

	// Code is the external identity code. Assigned by the registry's
	// allocator when zero; events never carry one.
	Code int64

	// RegionValue is the relative reward value of the region this
	// location belongs to, used when placing items "like the base game".
	RegionValue int

	// StaticKey is the key in the client's Slots table for this
	// location, for cases where the client's name-based heuristic can't
	// identify it.
	StaticKey string

	// Missable marks locations that can become permanently
	// inaccessible during normal play.
	Missable bool

	// NPC marks rewards contingent on an NPC quest.
	NPC bool

	// Prominent marks the small set of obvious landmark locations
	// suitable as priority locations.
	Prominent bool

	// Progression marks locations that hold a progression item in the
	// vanilla game.
	Progression bool

	// Boss marks full boss rewards.
	Boss bool

	// Miniboss marks miniboss rewards. Implies Drop.
	Miniboss bool

	// Drop marks guaranteed enemy drops.
	Drop bool

	// Shop marks locations that can appear in an NPC's shop.
	Shop bool

	// Conditional marks locations gated behind a progression item,
	// which shouldn't receive "similar to the base game" placements.
	Conditional bool

	// Hidden marks locations that are particularly tricky to find.
	Hidden bool
}

// IsEvent reports whether this location is an event rather than a
// physical item pickup.
func (d LocationData) IsEvent() bool {
	return d.DefaultItem == ""
}

// Groups returns the names of the location groups this location
// belongs to. Groups derived from the default item require the item
// registry.
func (d LocationData) Groups(items *ItemRegistry) ([]string, error) {
	var names []string
	if d.Prominent {
		names = append(names, "Prominent")
	}
	if d.Progression {
		names = append(names, "Progression")
	}
	if d.Boss {
		names = append(names, "Boss Rewards")
	}
	if d.Miniboss {
		names = append(names, "Miniboss Rewards")
	}
	if d.NPC {
		names = append(names, "Friendly NPC Rewards")
	}
	if d.Hidden {
		names = append(names, "Hidden")
	}

	item, ok := items.Lookup(d.DefaultItem)
	if !ok {
		return nil, fmt.Errorf("catalog: location %q has unknown default item %q", d.Name, d.DefaultItem)
	}
	names = append(names, item.Category.GroupName())
	if item.Classification == ClassProgression {
		names = append(names, "Progression")
	}
	return names, nil
}

// LocationRegistry is the immutable location catalog for one session.
// Locations are grouped into region tables whose order matches the
// authored region order.
type LocationRegistry struct {
	regionOrder []string
	tables      map[string][]LocationData
	byName      map[string]LocationData
	groups      map[string][]string
}

// NewLocationRegistry builds a registry from the given per-region
// tables, assigning codes from alloc in region order. Region tables are
// walked in regionOrder; every region in regionOrder must have a table
// entry (possibly empty).
func NewLocationRegistry(alloc *CodeAllocator, regionOrder []string, tables map[string][]LocationData, items *ItemRegistry) (*LocationRegistry, error) {
	r := &LocationRegistry{
		regionOrder: append([]string(nil), regionOrder...),
		tables:      make(map[string][]LocationData, len(tables)),
		byName:      make(map[string]LocationData),
		groups:      make(map[string][]string),
	}
	for value, region := range regionOrder {
		table, ok := tables[region]
		if !ok {
			return nil, fmt.Errorf("catalog: region %q has no location table", region)
		}
		normalized := make([]LocationData, 0, len(table))
		for _, loc := range table {
			if loc.Name == "" {
				return nil, fmt.Errorf("catalog: location with empty name in region %q", region)
			}
			if _, dup := r.byName[loc.Name]; dup {
				return nil, fmt.Errorf("catalog: duplicate location %q", loc.Name)
			}
			if loc.Miniboss {
				loc.Drop = true
			}
			loc.RegionValue = value
			if !loc.IsEvent() {
				if _, ok := items.Lookup(loc.DefaultItem); !ok {
					return nil, fmt.Errorf("catalog: location %q has unknown default item %q", loc.Name, loc.DefaultItem)
				}
				if loc.Code == 0 {
					loc.Code = alloc.Next()
				}
				groups, err := loc.Groups(items)
				if err != nil {
					return nil, err
				}
				for _, group := range groups {
					r.groups[group] = append(r.groups[group], loc.Name)
				}
				r.groups[region] = append(r.groups[region], loc.Name)
			}
			r.byName[loc.Name] = loc
			normalized = append(normalized, loc)
		}
		r.tables[region] = normalized
	}
	return r, nil
}

// Lookup returns the location with the given name.
func (r *LocationRegistry) Lookup(name string) (LocationData, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Table returns the locations authored for the given region, or nil if
// the region is unknown.
func (r *LocationRegistry) Table(region string) []LocationData {
	return r.tables[region]
}

// HasRegion reports whether the region has an authored table.
func (r *LocationRegistry) HasRegion(region string) bool {
	_, ok := r.tables[region]
	return ok
}

// RegionOrder returns the authored region order, from least to most
// valuable rewards.
func (r *LocationRegistry) RegionOrder() []string {
	return append([]string(nil), r.regionOrder...)
}

// All returns every location, walking regions in order.
func (r *LocationRegistry) All() []LocationData {
	var out []LocationData
	for _, region := range r.regionOrder {
		out = append(out, r.tables[region]...)
	}
	return out
}

// Group returns the member names of a location group.
func (r *LocationRegistry) Group(name string) []string {
	return append([]string(nil), r.groups[name]...)
}

// LocationGroupDescriptions documents the location groups for the host.
var LocationGroupDescriptions = map[string]string{
	"Prominent":             "A small number of locations that are in very obvious locations. Mostly boss drops. Ideal for setting as priority locations.",
	"Progression":           "Locations that contain items in vanilla which unlock other locations.",
	"Boss Rewards":          "Boss drops. Does not include soul transfusions or shop items.",
	"Miniboss Rewards":      "Miniboss drops. Only includes enemies considered minibosses by the enemy randomizer.",
	"Friendly NPC Rewards":  "Items given by friendly NPCs as part of their quests or from non-violent interaction.",
	"Upgrade":               "Locations that contain upgrade items in vanilla, including gourd seeds and prayer beads.",
	"Unique":                "Locations that contain items in vanilla that are unique per NG cycle, such as scrolls, keys and prosthetic tools.",
	"Miscellaneous":         "Locations that contain generic stackable items in vanilla, such as sugars, ash and spirit emblems.",
	"Hidden":                "Locations that are particularly difficult to find.",
}

// Naming conventions:
//
//   - Location names are prefixed with the physical region where the
//     item is acquired, even if its logical region differs.
//   - Avoid vanilla enemy placements as landmarks; the enemy randomizer
//     moves them. Use generic terms like "mob", "boss" and "miniboss".
//   - Use "[name] drop" for items that require killing an NPC who turns
//     hostile during their quest, "kill [name]" for items that require
//     killing them unprovoked, and "[name]" for quest rewards.
var vanillaLocations = map[string][]LocationData{
	"Dilapidated Temple": {
		{Name: "Shinobi Prosthetic - arrive at DT", DefaultItem: "Shinobi Prosthetic", Prominent: true, Progression: true},
	},
	"Ashina Outskirts": {
		{Name: "AO: Young Lord's Bell Charm - speak to Inosuke Nogami's mother", DefaultItem: "Young Lord's Bell Charm", NPC: true, Progression: true},
	},
	"Ashina Outskirts after Central Forces": {},
	"Ashina Castle Gate":                    {},
	"Ashina Reservoir":                      {},
	"Ashina Reservoir Ending": {
		{Name: "ARE - Memory: Saint Isshin", DefaultItem: "Memory: Saint Isshin", Boss: true, Prominent: true},
	},
	"Ashina Castle": {
		{Name: "AC: Gatehouse Key - dropped by enemy on bridge leading to Abandoned Dungeon entrance", DefaultItem: "Gatehouse Key", Drop: true},
		{Name: "AC: Memory: Genichiro", DefaultItem: "Memory: Genichiro", Boss: true, Prominent: true},
		{Name: "Gun Fort Shrine Key - speak to Kuro", DefaultItem: "Gun Fort Shrine Key", NPC: true, Progression: true},
	},
	"Ashina Castle after Interior Ministry": {
		{Name: "DT: Father's Bell Charm - Emma questline", DefaultItem: "Father's Bell Charm", NPC: true, Progression: true},
		{Name: "ACIM: Aromatic Branch - second AC memory boss", DefaultItem: "Aromatic Branch", Boss: true, Progression: true},
	},
	"Ashina Castle after Central Forces": {
		{Name: "ACCF: Secret Passage Key - speak to Emma", DefaultItem: "Secret Passage Key", NPC: true, Progression: true},
	},
	"Hirata Estate": {
		{Name: "HE1: Mist Raven's Feathers - down the river from Bamboo Thicket Slope", DefaultItem: "Mist Raven's Feathers", Hidden: true},
		{Name: "HE1: Hidden Temple Key - Owl after Bamboo Thicket Slope", DefaultItem: "Hidden Temple Key", NPC: true, Progression: true},
	},
	"Hirata Estate Second Half": {},
	"Hirata Estate Revisited":   {},
	"Abandoned Dungeon":         {},
	"Senpou Temple":             {},
	"Senpou Temple Grounds":     {},
	"Senpou Temple Inner Sanctum": {
		{Name: "STIS: Puppeteer Ninjutsu - STIS memory boss", DefaultItem: "Puppeteer Ninjutsu", Boss: true, Progression: true},
		{Name: "STIS: Mortal Blade", DefaultItem: "Mortal Blade", Progression: true},
	},
	"Upper Sunken Valley": {},
	"Sunken Valley Passage": {
		{Name: "SVP: Lotus of the Palace - after SVP memory boss", DefaultItem: "Lotus of the Palace", Boss: true, Progression: true},
	},
	"Ashina Depths": {},
	"Hidden Forest": {},
	"Mibu Village": {
		{Name: "MV: Mibu Breathing Technique - kill MV memory boss", DefaultItem: "Mibu Breathing Technique", Boss: true, Progression: true},
		{Name: "MV: Shelter Stone - after MV memory boss", DefaultItem: "Shelter Stone", Progression: true},
	},
	"Fountainhead Palace": {
		{Name: "FP: Divine Dragon's Tears", DefaultItem: "Divine Dragon's Tears", Boss: true, Progression: true},
	},
}

// vanillaRegionOrder lists regions in approximate order of reward.
var vanillaRegionOrder = []string{
	"Dilapidated Temple",
	"Ashina Outskirts",
	"Hirata Estate",
	"Hirata Estate Second Half",
	"Ashina Castle Gate",
	"Ashina Castle",
	"Ashina Reservoir",
	"Abandoned Dungeon",
	"Senpou Temple",
	"Senpou Temple Grounds",
	"Senpou Temple Inner Sanctum",
	"Upper Sunken Valley",
	"Sunken Valley Passage",
	"Ashina Depths",
	"Hidden Forest",
	"Mibu Village",
	"Ashina Castle after Interior Ministry",
	"Fountainhead Palace",
	"Ashina Castle after Central Forces",
	"Ashina Outskirts after Central Forces",
	"Ashina Reservoir Ending",
	"Hirata Estate Revisited",
}
