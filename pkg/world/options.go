package world

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Behavior is a tri-state policy for a class of restricted locations.
// Higher values are stricter.
type Behavior int

const (
	// BehaviorAllowUseful forbids progression items but permits useful
	// and filler items.
	BehaviorAllowUseful Behavior = 1

	// BehaviorForbidUseful forbids both progression and useful items.
	BehaviorForbidUseful Behavior = 2

	// BehaviorDoNotRandomize keeps the vanilla item in place.
	BehaviorDoNotRandomize Behavior = 3
)

func (b Behavior) String() string {
	switch b {
	case BehaviorAllowUseful:
		return "allow_useful"
	case BehaviorForbidUseful:
		return "forbid_useful"
	case BehaviorDoNotRandomize:
		return "do_not_randomize"
	}
	return fmt.Sprintf("behavior(%d)", int(b))
}

// ParseBehavior converts an option string to a Behavior.
func ParseBehavior(s string) (Behavior, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "allow_useful":
		return BehaviorAllowUseful, nil
	case "forbid_useful":
		return BehaviorForbidUseful, nil
	case "do_not_randomize":
		return BehaviorDoNotRandomize, nil
	}
	return 0, fmt.Errorf("unknown location behavior %q", s)
}

func (b *Behavior) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseBehavior(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func (b Behavior) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

// outranks reports whether axis a's setting overrides axis b's for a
// location governed by both. This is the single precedence comparison
// for the excluded and missable axes; every call site goes through it.
func outranks(a, b Behavior) bool {
	return a > b
}

// Options are the host-supplied generation options for one world.
type Options struct {
	// DeathLink propagates deaths between linked players.
	DeathLink bool `yaml:"death_link"`

	// Enemy randomization is carried as data for the client; this core
	// never interprets it beyond the preset blob.
	RandomizeEnemies      bool           `yaml:"randomize_enemies"`
	ScaleEnemies          bool           `yaml:"scale_enemies"`
	ReduceHarmlessEnemies bool           `yaml:"reduce_harmless_enemies"`
	RandomEnemyPreset     map[string]any `yaml:"random_enemy_preset"`

	// ExcludeLocations are locations that must not hold an important
	// item, to the degree set by ExcludedLocationBehavior.
	ExcludeLocations []string `yaml:"exclude_locations"`

	// PriorityLocations are locations the host prefers for progression
	// items.
	PriorityLocations []string `yaml:"priority_locations"`

	ExcludedLocationBehavior Behavior `yaml:"excluded_location_behavior"`
	MissableLocationBehavior Behavior `yaml:"missable_location_behavior"`
}

// DefaultOptions returns the defaults the host applies before merging
// a player's YAML.
func DefaultOptions() Options {
	return Options{
		RandomizeEnemies:         true,
		ScaleEnemies:             true,
		ExcludedLocationBehavior: BehaviorForbidUseful,
		MissableLocationBehavior: BehaviorForbidUseful,
	}
}

// Normalize fills unset tri-state behaviors with their defaults.
func (o *Options) Normalize() {
	if o.ExcludedLocationBehavior == 0 {
		o.ExcludedLocationBehavior = BehaviorForbidUseful
	}
	if o.MissableLocationBehavior == 0 {
		o.MissableLocationBehavior = BehaviorForbidUseful
	}
}

// ExcludedOutranksMissable reports whether the excluded axis governs a
// location that is both excluded and missable.
func (o Options) ExcludedOutranksMissable() bool {
	return outranks(o.ExcludedLocationBehavior, o.MissableLocationBehavior)
}

// MissableOutranksExcluded reports whether the missable axis governs a
// location that is both excluded and missable.
func (o Options) MissableOutranksExcluded() bool {
	return outranks(o.MissableLocationBehavior, o.ExcludedLocationBehavior)
}
