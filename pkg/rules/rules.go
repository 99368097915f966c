// Package rules provides the predicate layer for accessibility logic.
// Rules are plain functions over a narrow state view; targets hold an
// append-only list of rules combined by conjunction at evaluation time,
// so attachment order never matters and rules are never overwritten.
package rules

// State is the view of collected progress supplied by the host's
// search engine. This package never walks the graph itself; it only
// asks the oracle.
type State interface {
	// Has reports whether at least one instance of the named item has
	// been collected.
	Has(item string) bool

	// CanReachRegion reports whether the named region is reachable.
	CanReachRegion(region string) bool

	// CanReachLocation reports whether the named location is reachable.
	CanReachLocation(location string) bool
}

// CollectionRule is an accessibility predicate over collected state.
type CollectionRule func(State) bool

// Item is the view of a candidate item checked by item rules.
type Item interface {
	ItemName() string

	// Advancement reports whether the item is progression-classified.
	Advancement() bool
}

// ItemPredicate decides whether a location accepts a candidate item.
type ItemPredicate func(Item) bool

// Has returns a rule satisfied once the named item has been collected.
func Has(item string) CollectionRule {
	return func(state State) bool {
		return state.Has(item)
	}
}

// RuleSet is an append-only conjunction of collection rules. The zero
// value allows everything.
type RuleSet struct {
	rules []CollectionRule
}

// Add appends a rule. The target's effective rule is the AND of every
// rule added so far.
func (rs *RuleSet) Add(rule CollectionRule) {
	rs.rules = append(rs.rules, rule)
}

// Eval reports whether every rule in the set passes.
func (rs *RuleSet) Eval(state State) bool {
	for _, rule := range rs.rules {
		if !rule(state) {
			return false
		}
	}
	return true
}

// Len returns the number of rules attached.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// ItemRuleSet is an append-only conjunction of item predicates. The
// zero value accepts every item.
type ItemRuleSet struct {
	rules []ItemPredicate
}

// Add appends a predicate.
func (rs *ItemRuleSet) Add(pred ItemPredicate) {
	rs.rules = append(rs.rules, pred)
}

// Allows reports whether every predicate accepts the item.
func (rs *ItemRuleSet) Allows(item Item) bool {
	for _, pred := range rs.rules {
		if !pred(item) {
			return false
		}
	}
	return true
}

// Len returns the number of predicates attached.
func (rs *ItemRuleSet) Len() int {
	return len(rs.rules)
}
