// Package session keeps the current user of a browser session in a durable slot.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	applog "manuscrito/internal/log"
	"manuscrito/models"
)

// Store holds zero or one current user, written through to a Slot on every change.
type Store struct {
	slot Slot
}

// NewStore returns a Store persisting to slot.
func NewStore(slot Slot) *Store {
	return &Store{slot: slot}
}

// Load decodes the user in the slot. A missing or unreadable entry yields false;
// unreadable entries are also erased.
func (s *Store) Load(ctx context.Context) (models.User, bool) {
	if s == nil || s.slot == nil {
		return models.User{}, false
	}
	raw, ok := s.slot.Get(ctx)
	if !ok || len(raw) == 0 {
		return models.User{}, false
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil || u.ID == "" || u.LastUnlockedDay < 1 {
		applog.Debug(ctx, "discarding unreadable session user", "error", err, "bytes", len(raw))
		if rmErr := s.slot.Remove(ctx); rmErr != nil {
			applog.Error(ctx, "failed to erase unreadable session user", "error", rmErr)
		}
		return models.User{}, false
	}
	return u, true
}

// Set replaces the current user and persists it.
func (s *Store) Set(ctx context.Context, u models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	if err := s.slot.Put(ctx, raw); err != nil {
		return fmt.Errorf("write session slot: %w", err)
	}
	return nil
}

// Clear removes the current user and erases the slot.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.slot.Remove(ctx); err != nil {
		return fmt.Errorf("erase session slot: %w", err)
	}
	return nil
}
