package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richarm4/sekiro-apworld/pkg/catalog"
)

func TestCreateItems_PoolMatchesOpenLocations(t *testing.T) {
	w := newTestWorld(t, DefaultOptions(), 7)
	require.NoError(t, w.CreateItems())

	// One slot per open location: the skipped default and the duplicate
	// unique default leave a deficit of two, covered by the two
	// mandatory injectables.
	assert.Len(t, w.LocalPool(), len(w.UnfilledLocations()))

	names := poolNames(w)
	assert.Contains(t, names, "Key")
	assert.Contains(t, names, "Blade")
	assert.Contains(t, names, "Charm")
	assert.Contains(t, names, "Sigil")
	assert.NotContains(t, names, "Husk", "skipped defaults never enter the pool")

	keys := 0
	for _, name := range names {
		if name == "Key" {
			keys++
		}
	}
	assert.Equal(t, 1, keys, "unique defaults are deduplicated")

	assert.Empty(t, w.Precollected(), "every mandatory injectable fit the deficit")
}

func TestCreateItems_InjectOverflow(t *testing.T) {
	// Fixing the duplicate-default location shrinks the deficit to one,
	// so only one of the two mandatory injectables fits. The other must
	// be force-granted, never dropped.
	opts := DefaultOptions()
	opts.ExcludedLocationBehavior = BehaviorDoNotRandomize
	opts.ExcludeLocations = []string{"TR2: spare"}

	w := newTestWorld(t, opts, 7)
	require.NoError(t, w.CreateItems())

	injected := 0
	for _, name := range poolNames(w) {
		if name == "Charm" || name == "Sigil" {
			injected++
		}
	}
	assert.Equal(t, 1, injected)

	granted := precollectedNames(w)
	require.Len(t, granted, 1)
	assert.Contains(t, []string{"Charm", "Sigil"}, granted[0])
}

func TestCreateItems_InjectablePoolSmallerThanDeficit(t *testing.T) {
	// Three skipped defaults but a single injectable: inject what
	// exists, pad the rest with filler. Not an error.
	items, err := catalog.NewItemRegistry(catalog.NewCodeAllocator(catalog.BaseItemCode), []catalog.ItemData{
		{Name: "Husk", Category: catalog.CategoryUnique, Skip: true},
		{Name: "Charm", Category: catalog.CategoryUnique, Classification: catalog.ClassProgression, Inject: true},
		{Name: "Pebble", Category: catalog.CategoryMisc, Filler: true},
	})
	require.NoError(t, err)
	locations, err := catalog.NewLocationRegistry(
		catalog.NewCodeAllocator(catalog.BaseLocationCode),
		[]string{"R1"},
		map[string][]catalog.LocationData{
			"R1": {
				{Name: "R1: first", DefaultItem: "Husk"},
				{Name: "R1: second", DefaultItem: "Husk"},
				{Name: "R1: third", DefaultItem: "Husk"},
			},
		},
		items,
	)
	require.NoError(t, err)

	w := New(&catalog.Catalog{Items: items, Locations: locations}, 1, "Player1", "seed1", DefaultOptions(), 3, discardLogger())
	require.NoError(t, w.BuildGraph([]string{"R1"}, nil))
	require.NoError(t, w.CreateItems())

	names := poolNames(w)
	require.Len(t, names, 3)

	charms, fillers := 0, 0
	for _, name := range names {
		switch name {
		case "Charm":
			charms++
		case "Pebble":
			fillers++
		}
	}
	assert.Equal(t, 1, charms, "exactly the one existing injectable is injected")
	assert.Equal(t, 2, fillers, "remaining deficit is padded with filler")
	assert.Empty(t, w.Precollected())
}

func TestCreateItems_Deterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.ExcludedLocationBehavior = BehaviorDoNotRandomize
	opts.ExcludeLocations = []string{"TR2: spare"}

	first := newTestWorld(t, opts, 99)
	require.NoError(t, first.CreateItems())
	second := newTestWorld(t, opts, 99)
	require.NoError(t, second.CreateItems())

	assert.Equal(t, poolNames(first), poolNames(second))
	assert.Equal(t, precollectedNames(first), precollectedNames(second))
}

func TestCreateItems_UnavailableUnfilled(t *testing.T) {
	w := newTestWorld(t, DefaultOptions(), 1)

	// Simulate a catalog/graph mismatch: an event lost its locked item.
	gate := w.Location("TR2: gate")
	require.NotNil(t, gate)
	gate.Item = nil

	err := w.CreateItems()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TR2: gate")
}

func TestFillerItemName(t *testing.T) {
	w := newTestWorld(t, DefaultOptions(), 5)
	fillers := w.Catalog.Items.FillerNames()
	for i := 0; i < 20; i++ {
		assert.Contains(t, fillers, w.FillerItemName())
	}
}
