package services

import (
	"context"
	"errors"
)

// MockStorage is a mock implementation of Storage for testing
type MockStorage struct {
	records   map[string]*SlotRecord
	pingError error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		records: make(map[string]*SlotRecord),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.pingError = err
}

// Ping mocks storage ping
func (m *MockStorage) Ping(ctx context.Context) error {
	return m.pingError
}

// Close mocks storage close
func (m *MockStorage) Close() error {
	return nil
}

// SaveSlot mocks saving a slot record
func (m *MockStorage) SaveSlot(ctx context.Context, record *SlotRecord) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}
	m.records[slotKey(record.Seed, record.Slot)] = record
	return nil
}

// LoadSlot mocks loading a slot record
func (m *MockStorage) LoadSlot(ctx context.Context, seed, slot string) (*SlotRecord, error) {
	return m.records[slotKey(seed, slot)], nil
}

// DeleteSlot mocks deleting a slot record
func (m *MockStorage) DeleteSlot(ctx context.Context, seed, slot string) error {
	delete(m.records, slotKey(seed, slot))
	return nil
}
