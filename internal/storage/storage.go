// Package storage persists whole JSON documents under named slots.
//
// Reads are fail-soft: a missing, unreadable or corrupt slot yields the
// caller's default and a logged warning. Writes always replace the entire
// document for the slot.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"hallbook/internal/logging"
)

// Slot is a named persisted document location
type Slot string

const (
	SlotCurrentUser     Slot = "currentUser"
	SlotUserBookings    Slot = "userBookings"
	SlotWeddingBudget   Slot = "weddingBudget"
	SlotGuestList       Slot = "guestList"
	SlotWeddingTimeline Slot = "weddingTimeline"
	SlotSupportTickets  Slot = "supportTickets"
)

// Backend is a raw key-value byte store
type Backend interface {
	// Get returns the stored value and whether the key exists
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set replaces the value stored under key
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Store serializes documents into a Backend. A single mutex serializes all
// slot access so each read-modify-write is observed atomically.
type Store struct {
	mu      sync.Mutex
	backend Backend
	log     zerolog.Logger
}

// NewStore creates a new store over backend
func NewStore(backend Backend, log zerolog.Logger) *Store {
	return &Store{
		backend: backend,
		log:     logging.Component(log, "storage"),
	}
}

// Close closes the underlying backend
func (s *Store) Close() error {
	return s.backend.Close()
}

// Load reads slot into a T. If the slot is absent or cannot be decoded,
// def is returned; decode and read failures are logged, never returned.
func Load[T any](ctx context.Context, s *Store, slot Slot, def T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(ctx, s, slot, def)
}

// Save writes doc to slot, replacing any prior content
func Save[T any](ctx context.Context, s *Store, slot Slot, doc T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return save(ctx, s, slot, doc)
}

// Update loads slot (falling back to def), passes it to fn and saves the
// result if fn reports a change. It returns the resulting document and
// whether it was written.
func Update[T any](ctx context.Context, s *Store, slot Slot, def T, fn func(T) (T, bool)) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := load(ctx, s, slot, def)
	next, changed := fn(current)
	if !changed {
		return current, false, nil
	}
	if err := save(ctx, s, slot, next); err != nil {
		return current, false, err
	}
	return next, true, nil
}

func load[T any](ctx context.Context, s *Store, slot Slot, def T) T {
	data, ok, err := s.backend.Get(ctx, string(slot))
	if err != nil {
		s.log.Warn().Err(err).Str("slot", string(slot)).Msg("Failed to read slot, using default")
		return def
	}

	data = bytes.TrimSpace(data)
	if !ok || len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return def
	}

	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warn().Err(err).Str("slot", string(slot)).Msg("Error parsing stored data, using default")
		return def
	}
	return doc
}

func save[T any](ctx context.Context, s *Store, slot Slot, doc T) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}
	if err := s.backend.Set(ctx, string(slot), data); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", slot, err)
	}
	s.log.Debug().Str("slot", string(slot)).Int("bytes", len(data)).Msg("Slot saved")
	return nil
}
