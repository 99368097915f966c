package world

import (
	"github.com/richarm4/sekiro-apworld/pkg/rules"
)

// vanillaEdges wires the vanilla Sekiro region graph. The graph may
// contain cycles and duplicate edges; reachability is all that matters.
var vanillaEdges = []Edge{
	{"Dilapidated Temple", "Ashina Outskirts"},
	{"Dilapidated Temple", "Hirata Estate"},
	{"Hirata Estate", "Hirata Estate Second Half"},

	{"Dilapidated Temple", "Hirata Estate Revisited"},

	{"Ashina Outskirts", "Ashina Castle Gate"},

	{"Ashina Castle Gate", "Ashina Castle"},

	{"Ashina Castle", "Abandoned Dungeon"},
	{"Ashina Castle", "Ashina Reservoir"},
	{"Ashina Castle", "Upper Sunken Valley"},

	{"Senpou Temple", "Ashina Castle after Interior Ministry"},
	{"Hirata Estate", "Ashina Castle after Interior Ministry"},
	{"Mibu Village", "Ashina Castle after Interior Ministry"},
	{"Sunken Valley Passage", "Ashina Castle after Interior Ministry"},

	{"Ashina Castle after Interior Ministry", "Fountainhead Palace"},

	{"Ashina Castle after Central Forces", "Ashina Reservoir Ending"},
	{"Ashina Castle after Central Forces", "Ashina Outskirts after Central Forces"},

	{"Upper Sunken Valley", "Sunken Valley Passage"},
	{"Ashina Reservoir", "Abandoned Dungeon"},

	{"Abandoned Dungeon", "Senpou Temple"},

	{"Senpou Temple", "Senpou Temple Grounds"},
	{"Senpou Temple Grounds", "Senpou Temple Inner Sanctum"},
	{"Abandoned Dungeon", "Senpou Temple"},
	{"Abandoned Dungeon", "Ashina Depths"},

	{"Ashina Depths", "Hidden Forest"},

	{"Hidden Forest", "Mibu Village"},

	{"Fountainhead Palace", "Ashina Castle after Central Forces"},
}

// CreateRegions builds the vanilla Sekiro graph.
func (w *World) CreateRegions() error {
	if err := w.BuildGraph(w.Catalog.Locations.RegionOrder(), vanillaEdges); err != nil {
		return err
	}
	return w.connectNamed("Menu", "Dilapidated Temple", "New Game")
}

// SetRules attaches the vanilla accessibility rules and registers the
// completion condition.
func (w *World) SetRules() error {
	if err := w.addAllowUsefulLocationRules(); err != nil {
		return err
	}

	steps := []error{
		w.RequireItemForEntrance("Ashina Outskirts", "Shinobi Prosthetic"),
		w.RequireItemForEntrance("Hirata Estate Second Half", "Shinobi Prosthetic"),
		w.RequireItemForEntrance("Hirata Estate Revisited", "Father's Bell Charm"),
		w.AddEntranceRule("Ashina Castle after Interior Ministry", func(state rules.State) bool {
			return state.Has("Lotus of the Palace") &&
				state.Has("Shelter Stone") &&
				state.Has("Mortal Blade")
		}),
		w.RequireItemForEntrance("Sunken Valley Passage", "Gun Fort Shrine Key"),
		w.RequireItemForEntrance("Fountainhead Palace", "Aromatic Branch"),
		w.AddEntranceRule("Ashina Castle after Central Forces", func(state rules.State) bool {
			return w.CanGet(state, "FP: Divine Dragon's Tears")
		}),
		w.RequireItemForLocation("FP: Divine Dragon's Tears", "Mibu Breathing Technique"),
		w.RequireItemForLocation("ARE - Memory: Saint Isshin", "Secret Passage Key"),
	}
	for _, err := range steps {
		if err != nil {
			return err
		}
	}

	w.SetCompletionRule(func(state rules.State) bool {
		return w.CanGet(state, "ARE - Memory: Saint Isshin") && state.Has("Divine Dragon's Tears")
	})
	return nil
}

// Generate runs the whole local pipeline for one world: graph, pool,
// rules. Local item routing and slot data stay with the caller because
// they depend on host configuration.
func (w *World) Generate() error {
	if err := w.CreateRegions(); err != nil {
		return err
	}
	if err := w.CreateItems(); err != nil {
		return err
	}
	return w.SetRules()
}
