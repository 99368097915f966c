package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richarm4/sekiro-apworld/pkg/catalog"
	"github.com/richarm4/sekiro-apworld/pkg/rules"
)

func TestRequireItemForEntrance(t *testing.T) {
	w := newTestWorld(t, DefaultOptions(), 1)

	require.NoError(t, w.RequireItemForEntrance("TR2", "Key"))

	entrance := w.Entrance("Go To TR2")
	require.NotNil(t, entrance)
	assert.False(t, entrance.CanPass(&fakeState{}))
	assert.True(t, entrance.CanPass(&fakeState{items: map[string]bool{"Key": true}}))
}

func TestRequireItemForEntrance_NonProgression(t *testing.T) {
	w := newTestWorld(t, DefaultOptions(), 1)

	err := w.RequireItemForEntrance("TR2", "Trinket")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Trinket")
	assert.Contains(t, err.Error(), "progression")
}

func TestAddEntranceRule_UnknownRegion(t *testing.T) {
	w := newTestWorld(t, DefaultOptions(), 1)

	err := w.AddEntranceRule("TR9", func(rules.State) bool { return true })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TR9")
}

func TestAddEntranceRule_AbsentRegionSkipped(t *testing.T) {
	// TR2 exists in the catalog but was left out of this build, so the
	// rule is dropped without error.
	w := New(testCatalog(t), 1, "Player1", "seed1", DefaultOptions(), 1, discardLogger())
	require.NoError(t, w.BuildGraph([]string{"TR1"}, nil))

	assert.NoError(t, w.AddEntranceRule("TR2", func(rules.State) bool { return false }))
}

func TestAddLocationRule(t *testing.T) {
	w := newTestWorld(t, DefaultOptions(), 1)

	require.NoError(t, w.RequireItemForLocation("TR2: boss", "Key"))

	boss := w.Location("TR2: boss")
	assert.False(t, boss.CanReach(&fakeState{}))
	assert.True(t, boss.CanReach(&fakeState{items: map[string]bool{"Key": true}}))

	err := w.AddLocationRule("TR9: nowhere", func(rules.State) bool { return true })
	require.Error(t, err)
}

func TestAddLocationRule_FixedLocationSkipped(t *testing.T) {
	w := newTestWorld(t, DefaultOptions(), 1)

	// Events are not randomized; rules on them are dropped quietly.
	require.NoError(t, w.AddLocationRule("TR2: gate", func(rules.State) bool { return false }))
	assert.Equal(t, 0, w.Location("TR2: gate").Rules.Len())
}

func TestSetCompletionRule_Conjunction(t *testing.T) {
	w := newTestWorld(t, DefaultOptions(), 1)

	w.SetCompletionRule(func(state rules.State) bool { return state.Has("Key") })
	w.SetCompletionRule(func(state rules.State) bool { return state.Has("Blade") })

	done := w.CompletionRule()
	require.NotNil(t, done)
	assert.False(t, done(&fakeState{items: map[string]bool{"Key": true}}))
	assert.True(t, done(&fakeState{items: map[string]bool{"Key": true, "Blade": true}}))
}

func TestAllowUseful_ExcludedAxis(t *testing.T) {
	opts := DefaultOptions()
	opts.ExcludedLocationBehavior = BehaviorAllowUseful
	opts.ExcludeLocations = []string{"TR1: chest"}
	opts.PriorityLocations = []string{"TR1: chest", "TR2: boss"}

	w := newTestWorld(t, opts, 1)
	require.NoError(t, w.addAllowUsefulLocationRules())

	chest := w.Location("TR1: chest")
	key, _ := w.Catalog.Items.Lookup("Key")
	trinket, _ := w.Catalog.Items.Lookup("Trinket")
	assert.False(t, chest.Allows(newItem(key, 1)), "progression stays out")
	assert.True(t, chest.Allows(newItem(trinket, 1)), "useful is allowed in")

	// The fill engine must not see the raw exclusion on top of the
	// finer item rule, and the location can't stay prioritized.
	assert.Empty(t, w.ExcludedLocations())
	assert.Equal(t, []string{"TR1: chest"}, w.AllExcludedLocations())
	assert.Equal(t, []string{"TR2: boss"}, w.PriorityLocations())
}

func TestAllowUseful_MissableAxis(t *testing.T) {
	opts := DefaultOptions()
	opts.MissableLocationBehavior = BehaviorAllowUseful

	w := newTestWorld(t, opts, 1)
	require.NoError(t, w.addAllowUsefulLocationRules())

	ledge := w.Location("TR1: ledge")
	key, _ := w.Catalog.Items.Lookup("Key")
	trinket, _ := w.Catalog.Items.Lookup("Trinket")
	assert.False(t, ledge.Allows(newItem(key, 1)))
	assert.True(t, ledge.Allows(newItem(trinket, 1)))
	assert.Equal(t, ProgressDefault, ledge.Progress)
}

func TestAllowUseful_ExcludedAxisOutranksMissable(t *testing.T) {
	// The ledge is both missable and excluded. The excluded axis is
	// stricter, so the missable allow_useful rule must not weaken it:
	// no item rule is attached and the blanket exclusion stands.
	opts := DefaultOptions()
	opts.ExcludedLocationBehavior = BehaviorForbidUseful
	opts.MissableLocationBehavior = BehaviorAllowUseful
	opts.ExcludeLocations = []string{"TR1: ledge"}

	w := newTestWorld(t, opts, 1)
	require.NoError(t, w.addAllowUsefulLocationRules())

	ledge := w.Location("TR1: ledge")
	trinket, _ := w.Catalog.Items.Lookup("Trinket")
	assert.True(t, ledge.Allows(newItem(trinket, 1)), "no item rule should be attached")
	assert.Equal(t, 0, ledge.ItemRules.Len())
	assert.Equal(t, []string{"TR1: ledge"}, w.ExcludedLocations())
}

func TestVanilla_Generate(t *testing.T) {
	cat, err := catalog.New()
	require.NoError(t, err)

	w := New(cat, 1, "Player1", "seed1", DefaultOptions(), 4, discardLogger())
	require.NoError(t, w.Generate())

	assert.Len(t, w.Regions(), len(cat.Locations.RegionOrder())+1, "every region plus Menu")
	require.NotNil(t, w.Entrance("New Game"))
	assert.Equal(t, "Menu", w.Entrance("New Game").Source.Name)

	outskirts := w.Entrance("Go To Ashina Outskirts")
	require.NotNil(t, outskirts)
	assert.False(t, outskirts.CanPass(&fakeState{}))
	assert.True(t, outskirts.CanPass(&fakeState{items: map[string]bool{"Shinobi Prosthetic": true}}))

	central := w.Entrance("Go To Ashina Castle after Central Forces")
	require.NotNil(t, central)
	assert.False(t, central.CanPass(&fakeState{}))
	assert.True(t, central.CanPass(&fakeState{
		locations: map[string]bool{"FP: Divine Dragon's Tears": true},
	}))

	done := w.CompletionRule()
	require.NotNil(t, done)
	assert.False(t, done(&fakeState{}))
	assert.True(t, done(&fakeState{
		items:     map[string]bool{"Divine Dragon's Tears": true},
		locations: map[string]bool{"ARE - Memory: Saint Isshin": true},
	}))

	assert.Len(t, w.LocalPool(), len(w.UnfilledLocations()))
}
