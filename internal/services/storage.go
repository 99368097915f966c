package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/richarm4/sekiro-apworld/pkg/world"
)

// HealthChecker defines basic health check capabilities
type HealthChecker interface {
	// Ping tests the service connection
	Ping(ctx context.Context) error
}

// Closer defines cleanup capabilities
type Closer interface {
	// Close closes the service connection
	Close() error
}

// SlotRecord is the finalized output for one player, persisted so the
// host can re-serve payloads without regenerating.
type SlotRecord struct {
	ID        uuid.UUID      `json:"id"`
	Seed      string         `json:"seed"`
	Slot      string         `json:"slot"`
	SlotData  map[string]any `json:"slot_data"`
	Spoiler   world.Spoiler  `json:"spoiler"`
	CreatedAt time.Time      `json:"created_at"`
}

// Storage defines the interface for slot record persistence
type Storage interface {
	HealthChecker
	Closer

	// SaveSlot stores a record under its seed and slot name
	SaveSlot(ctx context.Context, record *SlotRecord) error

	// LoadSlot retrieves a record by seed and slot name.
	// Returns nil if the record doesn't exist
	LoadSlot(ctx context.Context, seed, slot string) (*SlotRecord, error)

	// DeleteSlot removes a record by seed and slot name
	DeleteSlot(ctx context.Context, seed, slot string) error
}
