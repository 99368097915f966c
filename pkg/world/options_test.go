package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseBehavior(t *testing.T) {
	tests := []struct {
		input   string
		want    Behavior
		wantErr bool
	}{
		{"allow_useful", BehaviorAllowUseful, false},
		{"forbid_useful", BehaviorForbidUseful, false},
		{"do_not_randomize", BehaviorDoNotRandomize, false},
		{"  Forbid_Useful ", BehaviorForbidUseful, false},
		{"vanilla", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseBehavior(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestBehavior_String(t *testing.T) {
	assert.Equal(t, "allow_useful", BehaviorAllowUseful.String())
	assert.Equal(t, "forbid_useful", BehaviorForbidUseful.String())
	assert.Equal(t, "do_not_randomize", BehaviorDoNotRandomize.String())
}

func TestOptions_UnmarshalYAML(t *testing.T) {
	doc := `
death_link: true
exclude_locations:
  - "TR1: ledge"
priority_locations:
  - "TR2: boss"
excluded_location_behavior: do_not_randomize
missable_location_behavior: allow_useful
`
	var opts Options
	require.NoError(t, yaml.Unmarshal([]byte(doc), &opts))
	assert.True(t, opts.DeathLink)
	assert.Equal(t, []string{"TR1: ledge"}, opts.ExcludeLocations)
	assert.Equal(t, []string{"TR2: boss"}, opts.PriorityLocations)
	assert.Equal(t, BehaviorDoNotRandomize, opts.ExcludedLocationBehavior)
	assert.Equal(t, BehaviorAllowUseful, opts.MissableLocationBehavior)
}

func TestOptions_UnmarshalYAML_BadBehavior(t *testing.T) {
	var opts Options
	err := yaml.Unmarshal([]byte("excluded_location_behavior: sometimes"), &opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sometimes")
}

func TestOptions_Normalize(t *testing.T) {
	var opts Options
	opts.MissableLocationBehavior = BehaviorAllowUseful
	opts.Normalize()
	assert.Equal(t, BehaviorForbidUseful, opts.ExcludedLocationBehavior)
	assert.Equal(t, BehaviorAllowUseful, opts.MissableLocationBehavior)
}

func TestOptions_Precedence(t *testing.T) {
	tests := []struct {
		name              string
		excluded, missable Behavior
		excludedWins      bool
		missableWins      bool
	}{
		{"equal axes tie", BehaviorForbidUseful, BehaviorForbidUseful, false, false},
		{"stricter excluded wins", BehaviorDoNotRandomize, BehaviorAllowUseful, true, false},
		{"stricter missable wins", BehaviorAllowUseful, BehaviorDoNotRandomize, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{
				ExcludedLocationBehavior: tt.excluded,
				MissableLocationBehavior: tt.missable,
			}
			assert.Equal(t, tt.excludedWins, opts.ExcludedOutranksMissable())
			assert.Equal(t, tt.missableWins, opts.MissableOutranksExcluded())
		})
	}
}

func TestBehavior_MarshalRoundTrip(t *testing.T) {
	out, err := yaml.Marshal(BehaviorDoNotRandomize)
	require.NoError(t, err)
	var got Behavior
	require.NoError(t, yaml.Unmarshal(out, &got))
	assert.Equal(t, BehaviorDoNotRandomize, got)
}
