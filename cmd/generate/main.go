package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/richarm4/sekiro-apworld/internal/config"
	"github.com/richarm4/sekiro-apworld/internal/logger"
	"github.com/richarm4/sekiro-apworld/internal/services"
	"github.com/richarm4/sekiro-apworld/pkg/catalog"
	"github.com/richarm4/sekiro-apworld/pkg/world"
)

// HostConfig is the YAML document describing one generation run.
type HostConfig struct {
	SeedName string       `yaml:"seed_name"`
	Slots    []SlotConfig `yaml:"slots"`
}

// SlotConfig describes one player's world.
type SlotConfig struct {
	Name string `yaml:"name"`

	// Seed drives every random draw for this world. Zero derives one
	// from the seed name and slot name, so reruns stay reproducible.
	Seed int64 `yaml:"seed"`

	Options world.Options `yaml:"options"`

	// LocalItems are routed into this world before the shared fill.
	LocalItems []LocalItemConfig `yaml:"local_items"`
}

// LocalItemConfig names an item and the regions it may land in.
type LocalItemConfig struct {
	Item    string   `yaml:"item"`
	Regions []string `yaml:"regions"`
}

func main() {
	configPath := flag.String("config", "", "path to the host YAML config")
	outDir := flag.String("out", "out", "directory for slot data and spoiler files")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg)

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "usage: generate -config host.yaml [-out dir]")
		os.Exit(1)
	}

	host, err := loadHostConfig(*configPath)
	if err != nil {
		log.Error("Failed to load host config", "error", err)
		os.Exit(1)
	}

	log.Info("Starting generation",
		"seed_name", host.SeedName,
		"slots", len(host.Slots),
		"environment", cfg.Environment)

	// Allocators run before the slot fan-out so identity codes are
	// identical in every world built this session.
	cat, err := catalog.New()
	if err != nil {
		log.Error("Failed to build catalog", "error", err)
		os.Exit(1)
	}

	var storage services.Storage
	if cfg.RedisURL != "" {
		redisService := services.NewRedisService(cfg.RedisURL, cfg.SlotTTL, log)
		pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := redisService.Ping(pingCtx)
		cancel()
		if err != nil {
			log.Error("Failed to connect to slot storage", "error", err)
			os.Exit(1)
		}
		storage = redisService
		defer func() {
			if err := storage.Close(); err != nil {
				log.Error("Failed to close slot storage", "error", err)
			}
		}()
		log.Info("Slot storage connection established")
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Error("Failed to create output directory", "dir", *outDir, "error", err)
		os.Exit(1)
	}

	g, ctx := errgroup.WithContext(context.Background())
	for i, slot := range host.Slots {
		player, slot := i+1, slot
		g.Go(func() error {
			return generateSlot(ctx, cat, host.SeedName, player, slot, *outDir, storage, cfg)
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("Generation failed", "error", err)
		os.Exit(1)
	}

	log.Info("Generation complete", "seed_name", host.SeedName, "slots", len(host.Slots))
}

func generateSlot(ctx context.Context, cat *catalog.Catalog, seedName string, player int, slot SlotConfig, outDir string, storage services.Storage, cfg *config.Config) error {
	seed := slot.Seed
	if seed == 0 {
		seed = deriveSeed(seedName, slot.Name)
	}

	log := logger.WithSlot(logger.Setup(cfg), seedName, slot.Name)

	w := world.New(cat, player, slot.Name, seedName, slot.Options, seed, log)
	if err := w.Generate(); err != nil {
		return fmt.Errorf("slot %q: %w", slot.Name, err)
	}

	for _, local := range slot.LocalItems {
		if err := w.FillLocalItem(local.Item, local.Regions, nil); err != nil {
			return fmt.Errorf("slot %q: %w", slot.Name, err)
		}
	}

	slotData, err := w.SlotData()
	if err != nil {
		return fmt.Errorf("slot %q: %w", slot.Name, err)
	}

	record := &services.SlotRecord{
		ID:        uuid.New(),
		Seed:      seedName,
		Slot:      slot.Name,
		SlotData:  slotData,
		Spoiler:   w.Spoiler(),
		CreatedAt: time.Now().UTC(),
	}

	base := filepath.Join(outDir, fmt.Sprintf("%s_%s", seedName, slot.Name))
	if err := writeJSON(base+".slot.json", slotData); err != nil {
		return fmt.Errorf("slot %q: %w", slot.Name, err)
	}
	if err := writeJSON(base+".spoiler.json", record.Spoiler); err != nil {
		return fmt.Errorf("slot %q: %w", slot.Name, err)
	}

	if storage != nil {
		if err := storage.SaveSlot(ctx, record); err != nil {
			return fmt.Errorf("slot %q: %w", slot.Name, err)
		}
	}

	log.Info("Slot generated",
		"player", player,
		"unfilled_locations", len(w.UnfilledLocations()),
		"pool_items", len(w.LocalPool()),
		"starting_items", len(w.Precollected()))
	return nil
}

func loadHostConfig(path string) (*HostConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	host := &HostConfig{}
	if err := yaml.Unmarshal(data, host); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if host.SeedName == "" {
		return nil, fmt.Errorf("%s: seed_name is required", path)
	}
	if len(host.Slots) == 0 {
		return nil, fmt.Errorf("%s: at least one slot is required", path)
	}
	for i := range host.Slots {
		if host.Slots[i].Name == "" {
			return nil, fmt.Errorf("%s: slot %d has no name", path, i)
		}
		host.Slots[i].Options.Normalize()
	}
	return host, nil
}

func deriveSeed(seedName, slotName string) int64 {
	h := fnv.New64a()
	h.Write([]byte(seedName))
	h.Write([]byte{0})
	h.Write([]byte(slotName))
	return int64(h.Sum64())
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
