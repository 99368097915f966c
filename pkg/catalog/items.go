// Package catalog holds the static item and location registries for the
// randomizer. The tables are authored once, loaded at process start and
// never mutated afterwards; identity codes are assigned by explicit
// allocators owned by the session.
package catalog

import "fmt"

// Classification describes how important an item is to game progression.
type Classification int

const (
	ClassFiller Classification = iota
	ClassUseful
	ClassProgression
	ClassTrap
)

func (c Classification) String() string {
	switch c {
	case ClassFiller:
		return "filler"
	case ClassUseful:
		return "useful"
	case ClassProgression:
		return "progression"
	case ClassTrap:
		return "trap"
	}
	return fmt.Sprintf("classification(%d)", int(c))
}

// ItemCategory is the closed set of item kinds. Group dispatch switches
// over it exhaustively, so adding a category is a compile-visible change.
type ItemCategory int

const (
	CategoryMisc ItemCategory = iota
	CategoryUnique
	CategoryUpgrade
)

// GroupName returns the item-group name for this category.
func (c ItemCategory) GroupName() string {
	switch c {
	case CategoryMisc:
		return "Miscellaneous"
	case CategoryUnique:
		return "Unique"
	case CategoryUpgrade:
		return "Upgrade"
	}
	panic(fmt.Sprintf("catalog: unknown item category %d", int(c)))
}

// ItemData describes one catalog item.
type ItemData struct {
	Name string

	// GameCode is the in-game pickup ID the client uses to grant the
	// item. Zero means the client resolves the item by name.
	GameCode int64

	Category ItemCategory

	// BaseName is the name of the individual item when this entry is a
	// multi-item stack. Defaults to Name.
	BaseName string

	Classification Classification

	// Code is the external identity code. Assigned by the registry's
	// allocator when zero; event placeholders never carry one.
	Code int64

	// Count is the number of copies granted per drop.
	Count int

	// Inject marks a candidate for injection into the pool when skipped
	// default items leave a deficit.
	Inject bool

	// Filler marks a candidate for padding out extra locations.
	Filler bool

	// Skip omits this item from randomization; its slot is covered by
	// injection or filler instead.
	Skip bool
}

// Unique reports whether the item should appear at most once in the
// pool. Generic stackables and upgrade materials are not unique.
func (d ItemData) Unique() bool {
	switch d.Category {
	case CategoryMisc, CategoryUpgrade:
		return false
	case CategoryUnique:
		return true
	}
	panic(fmt.Sprintf("catalog: unknown item category %d", int(d.Category)))
}

// Groups returns the names of the item groups this item belongs to.
func (d ItemData) Groups() []string {
	var names []string
	if d.Classification == ClassProgression {
		names = append(names, "Progression")
	}
	return append(names, d.Category.GroupName())
}

// Counts expands this item into stacked variants with the given copy
// counts. The variants share the base name, carry no preassigned code
// and are never filler candidates.
func (d ItemData) Counts(counts ...int) []ItemData {
	out := []ItemData{d}
	for _, count := range counts {
		stacked := d
		stacked.Code = 0
		stacked.BaseName = d.BaseName
		stacked.Name = fmt.Sprintf("%s x%d", d.BaseName, count)
		stacked.Count = count
		stacked.Filler = false
		out = append(out, stacked)
	}
	return out
}

// ItemRegistry is the immutable item catalog for one session.
type ItemRegistry struct {
	byName      map[string]ItemData
	order       []string
	fillerNames []string
	groups      map[string][]string
}

// NewItemRegistry builds a registry from the given table, assigning
// codes from alloc in table order.
func NewItemRegistry(alloc *CodeAllocator, items []ItemData) (*ItemRegistry, error) {
	r := &ItemRegistry{
		byName: make(map[string]ItemData, len(items)),
		groups: make(map[string][]string),
	}
	for _, item := range items {
		if item.Name == "" {
			return nil, fmt.Errorf("catalog: item with empty name")
		}
		if _, dup := r.byName[item.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate item %q", item.Name)
		}
		if item.BaseName == "" {
			item.BaseName = item.Name
		}
		if item.Count == 0 {
			item.Count = 1
		}
		if item.Code == 0 {
			item.Code = alloc.Next()
		}
		r.byName[item.Name] = item
		r.order = append(r.order, item.Name)
		if item.Filler {
			r.fillerNames = append(r.fillerNames, item.Name)
		}
		for _, group := range item.Groups() {
			r.groups[group] = append(r.groups[group], item.Name)
		}
	}
	return r, nil
}

// Lookup returns the item with the given name.
func (r *ItemRegistry) Lookup(name string) (ItemData, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// All returns every item in table order.
func (r *ItemRegistry) All() []ItemData {
	out := make([]ItemData, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Names returns the item names in table order.
func (r *ItemRegistry) Names() []string {
	return append([]string(nil), r.order...)
}

// FillerNames returns the names of the filler candidates.
func (r *ItemRegistry) FillerNames() []string {
	return append([]string(nil), r.fillerNames...)
}

// Group returns the member names of an item group, in table order.
func (r *ItemRegistry) Group(name string) []string {
	return append([]string(nil), r.groups[name]...)
}

// ItemGroupDescriptions documents the item groups for the host.
var ItemGroupDescriptions = map[string]string{
	"Progression":   "Items which unlock locations.",
	"Miscellaneous": "Generic stackable items, such as oil, sugars, balloons and so on.",
	"Unique":        "Items that are unique per NG cycle, such as the Ceremonial Tanto or prosthetic tools.",
	"Upgrade":       "Upgrade items, including gourd seeds and prayer beads.",
}

// vanillaItems is the authored item table. Order is significant: codes
// are assigned sequentially from it.
var vanillaItems = []ItemData{
	// Key items
	{Name: "Aromatic Branch", GameCode: 0x00555420, Category: CategoryUnique, Classification: ClassProgression},
	{Name: "Divine Dragon's Tears", GameCode: 0x00555421, Category: CategoryUnique, Classification: ClassProgression},
	{Name: "Father's Bell Charm", GameCode: 0x00555422, Category: CategoryUnique, Classification: ClassProgression},
	{Name: "Gatehouse Key", GameCode: 0x00555423, Category: CategoryUnique, Classification: ClassProgression},
	{Name: "Gun Fort Shrine Key", GameCode: 0x00555424, Category: CategoryUnique, Classification: ClassProgression},
	{Name: "Hidden Temple Key", GameCode: 0x00555425, Category: CategoryUnique, Classification: ClassProgression},
	{Name: "Lotus of the Palace", GameCode: 0x00555426, Category: CategoryUnique, Classification: ClassProgression},
	{Name: "Mibu Breathing Technique", GameCode: 0x00555427, Category: CategoryUnique, Classification: ClassProgression},
	{Name: "Mist Raven's Feathers", GameCode: 0x00555428, Category: CategoryUnique, Classification: ClassProgression},
	{Name: "Mortal Blade", GameCode: 0x00555429, Category: CategoryUnique, Classification: ClassProgression},
	{Name: "Puppeteer Ninjutsu", GameCode: 0x00555430, Category: CategoryUnique, Classification: ClassProgression},
	{Name: "Secret Passage Key", GameCode: 0x00555431, Category: CategoryUnique, Classification: ClassProgression},
	{Name: "Shelter Stone", GameCode: 0x00555432, Category: CategoryUnique, Classification: ClassProgression},
	{Name: "Shinobi Prosthetic", GameCode: 0x00555433, Category: CategoryUnique, Classification: ClassProgression},
	{Name: "Young Lord's Bell Charm", GameCode: 0x00555435, Category: CategoryUnique, Classification: ClassProgression},

	// Memories
	{Name: "Memory: Genichiro", GameCode: 0x00666000, Category: CategoryUnique, Classification: ClassUseful},
	{Name: "Memory: Saint Isshin", GameCode: 0x00666001, Category: CategoryUnique, Classification: ClassUseful},

	// Miscellaneous
	{Name: "Gachiin's Sugar", GameCode: 0x00555436, Category: CategoryMisc, Filler: true},
	{Name: "Ungo's Sugar", GameCode: 0x00555437, Category: CategoryMisc, Filler: true},
	{Name: "Ako's Sugar", GameCode: 0x00555438, Category: CategoryMisc, Filler: true},
	{Name: "Fistful of Ash", GameCode: 0x00555439, Category: CategoryMisc, Filler: true},
	{Name: "Ceramic Shard", GameCode: 0x0055543A, Category: CategoryMisc, Filler: true},
}
