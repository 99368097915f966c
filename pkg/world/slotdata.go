package world

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/richarm4/sekiro-apworld/pkg/catalog"
)

// CompatibleClientVersions is the range of client versions that can
// consume slot data produced by this build. Incompatible changes need
// at least a minor bump; the client surfaces an error to the user when
// its version falls outside the range.
const CompatibleClientVersions = ">=3.0.0-beta.24 <3.1.0"

// SlotData synthesizes the per-player payload handed to the game
// client. It is written once, from finalized state, and is opaque to
// the rest of generation.
func (w *World) SlotData() (map[string]any, error) {
	// Collect every placed item plus the whole catalog, so users can
	// manually request items that aren't randomized.
	itemsByName := make(map[string]catalog.ItemData)
	for _, loc := range w.FilledLocations() {
		item := loc.Item
		if item.Code() == 0 || item.Player != w.Player {
			continue
		}
		itemsByName[item.Data.Name] = item.Data
	}
	for _, item := range w.Catalog.Items.All() {
		if _, ok := itemsByName[item.Name]; !ok {
			itemsByName[item.Name] = item
		}
	}

	idsToGameIDs := make(map[string]int64)
	itemCounts := make(map[string]int)
	for _, item := range itemsByName {
		if item.Code == 0 {
			continue
		}
		key := strconv.FormatInt(item.Code, 10)
		if item.GameCode != 0 {
			idsToGameIDs[key] = item.GameCode
		}
		if item.Count != 1 {
			itemCounts[key] = item.Count
		}
	}

	// Locations the client's name-based heuristic can't identify get an
	// explicit key into its Slots table.
	locationIDsToKeys := make(map[string]string)
	for _, loc := range w.FilledLocations() {
		if loc.Code() != 0 && loc.Item.Code() != 0 && loc.Data.StaticKey != "" {
			locationIDsToKeys[strconv.FormatInt(loc.Code(), 10)] = loc.Data.StaticKey
		}
	}

	// Reserializing the preset is silly, but it's easier for the client.
	preset, err := json.Marshal(w.Options.RandomEnemyPreset)
	if err != nil {
		return nil, fmt.Errorf("world: serializing enemy preset: %w", err)
	}

	return map[string]any{
		"options": map[string]any{
			"death_link":              w.Options.DeathLink,
			"randomize_enemies":       w.Options.RandomizeEnemies,
			"reduce_harmless_enemies": w.Options.ReduceHarmlessEnemies,
			"scale_enemies":           w.Options.ScaleEnemies,
		},
		"seed":                w.SeedName,
		"slot":                w.SlotName,
		"random_enemy_preset": string(preset),
		"apIdsToItemIds":      idsToGameIDs,
		"itemCounts":          itemCounts,
		"locationIdsToKeys":   locationIDsToKeys,
		"versions":            CompatibleClientVersions,
	}, nil
}
