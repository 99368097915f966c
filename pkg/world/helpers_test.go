package world

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/richarm4/sekiro-apworld/pkg/catalog"
)

type fakeState struct {
	items     map[string]bool
	regions   map[string]bool
	locations map[string]bool
}

func (s *fakeState) Has(item string) bool              { return s.items[item] }
func (s *fakeState) CanReachRegion(name string) bool   { return s.regions[name] }
func (s *fakeState) CanReachLocation(name string) bool { return s.locations[name] }

// testCatalog builds a small catalog exercising every location flag the
// core cares about: missable, conditional, events, skipped defaults and
// duplicated unique defaults.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	items, err := catalog.NewItemRegistry(catalog.NewCodeAllocator(catalog.BaseItemCode), []catalog.ItemData{
		{Name: "Key", Category: catalog.CategoryUnique, Classification: catalog.ClassProgression},
		{Name: "Blade", Category: catalog.CategoryUnique, Classification: catalog.ClassProgression},
		{Name: "Trinket", Category: catalog.CategoryUnique, Classification: catalog.ClassUseful},
		{Name: "Pebble", Category: catalog.CategoryMisc, Filler: true},
		{Name: "Shard", Category: catalog.CategoryMisc, Filler: true},
		{Name: "Charm", Category: catalog.CategoryUnique, Classification: catalog.ClassProgression, Inject: true},
		{Name: "Sigil", Category: catalog.CategoryUnique, Classification: catalog.ClassProgression, Inject: true},
		{Name: "Bauble", Category: catalog.CategoryMisc, Inject: true},
		{Name: "Husk", Category: catalog.CategoryUnique, Skip: true},
	})
	require.NoError(t, err)

	locations, err := catalog.NewLocationRegistry(
		catalog.NewCodeAllocator(catalog.BaseLocationCode),
		[]string{"TR1", "TR2", "TR3"},
		map[string][]catalog.LocationData{
			"TR1": {
				{Name: "TR1: chest", DefaultItem: "Key"},
				{Name: "TR1: ledge", DefaultItem: "Pebble", Missable: true},
				{Name: "TR1: shrine", DefaultItem: "Husk"},
				{Name: "TR1: altar", DefaultItem: "Trinket", Conditional: true},
			},
			"TR2": {
				{Name: "TR2: boss", DefaultItem: "Blade", Boss: true},
				{Name: "TR2: pot", DefaultItem: "Shard"},
				{Name: "TR2: spare", DefaultItem: "Key", StaticKey: "spare_chest"},
				{Name: "TR2: gate"},
			},
			"TR3": {},
		},
		items,
	)
	require.NoError(t, err)

	return &catalog.Catalog{Items: items, Locations: locations}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestWorld builds a world over the test catalog with its graph
// already wired.
func newTestWorld(t *testing.T, opts Options, seed int64) *World {
	t.Helper()
	opts.Normalize()
	w := New(testCatalog(t), 1, "Player1", "seed1", opts, seed, discardLogger())
	require.NoError(t, w.BuildGraph(
		[]string{"TR1", "TR2", "TR3"},
		[]Edge{{"TR1", "TR2"}, {"TR2", "TR3"}},
	))
	return w
}

func openLocationNames(w *World) []string {
	var names []string
	for _, loc := range w.Locations() {
		if !loc.Locked {
			names = append(names, loc.Data.Name)
		}
	}
	return names
}

func poolNames(w *World) []string {
	var names []string
	for _, item := range w.LocalPool() {
		names = append(names, item.Data.Name)
	}
	return names
}

func precollectedNames(w *World) []string {
	var names []string
	for _, item := range w.Precollected() {
		names = append(names, item.Data.Name)
	}
	return names
}
