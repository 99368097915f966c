package world

import (
	"github.com/richarm4/sekiro-apworld/pkg/catalog"
	"github.com/richarm4/sekiro-apworld/pkg/rules"
)

// Region is a node in the traversal graph. Regions are created once per
// world build and never destroyed during generation.
type Region struct {
	Name      string
	Locations []*Location
	Exits     []*Entrance
}

// Entrance is a directed edge between two regions, optionally guarded
// by accessibility rules. Multiple entrances between the same pair of
// regions are allowed.
type Entrance struct {
	Name   string
	Source *Region
	Target *Region
	Rules  rules.RuleSet
}

// CanPass reports whether the entrance's rules pass for the state.
func (e *Entrance) CanPass(state rules.State) bool {
	return e.Rules.Eval(state)
}

// ProgressType mirrors the fill engine's per-location priority marking.
type ProgressType int

const (
	ProgressDefault ProgressType = iota
	ProgressPriority
	ProgressExcluded
)

// Location binds a catalog location to a concrete slot in the graph.
// A location is either locked (its item is permanently assigned, as
// with events and routed items) or open, awaiting the external fill.
type Location struct {
	Data     catalog.LocationData
	Region   *Region
	Progress ProgressType

	// Item is the placed item, nil while unfilled.
	Item *Item

	// Locked marks a permanent assignment; a locked location's item is
	// never reassigned.
	Locked bool

	// Event marks locations that auto-complete for reachability.
	Event bool

	Rules     rules.RuleSet
	ItemRules rules.ItemRuleSet
}

// Filled reports whether an item has been placed here.
func (l *Location) Filled() bool {
	return l.Item != nil
}

// Code returns the external identity code, or zero for events.
func (l *Location) Code() int64 {
	if l.Event {
		return 0
	}
	return l.Data.Code
}

// PlaceLocked permanently assigns item to this location.
func (l *Location) PlaceLocked(item *Item) {
	l.Item = item
	l.Locked = true
}

// CanReach reports whether the location's own rules pass for the state.
// Region reachability is the host engine's concern.
func (l *Location) CanReach(state rules.State) bool {
	return l.Rules.Eval(state)
}

// Allows reports whether the location's item rules accept the item.
func (l *Location) Allows(item rules.Item) bool {
	return l.ItemRules.Allows(item)
}
