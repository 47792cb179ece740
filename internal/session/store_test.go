package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"

	"manuscrito/models"
)

func sampleUser() models.User {
	return models.User{
		ID:                 "5f7c1c9e-1111-4a8e-9c0d-2b1f0e3d4c5a",
		Name:               "ana",
		Email:              "ana@email.com",
		IsAdmin:            false,
		ProgressPercentage: 8,
		LastUnlockedDay:    1,
		CreatedAt:          time.Date(2025, 12, 10, 9, 30, 0, 0, time.UTC),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	slot := &MemorySlot{}
	if err := NewStore(slot).Set(ctx, sampleUser()); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// a fresh Store over the same slot models a process restart
	got, ok := NewStore(slot).Load(ctx)
	if !ok {
		t.Fatal("expected persisted user to load")
	}
	want := sampleUser()
	if got.ID != want.ID || got.Name != want.Name || got.Email != want.Email || got.IsAdmin != want.IsAdmin ||
		got.ProgressPercentage != want.ProgressPercentage || got.LastUnlockedDay != want.LastUnlockedDay ||
		!got.CreatedAt.Equal(want.CreatedAt) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestStoreLoadEmpty(t *testing.T) {
	t.Parallel()

	if _, ok := NewStore(&MemorySlot{}).Load(context.Background()); ok {
		t.Fatal("expected no current user for an empty slot")
	}
	var nilStore *Store
	if _, ok := nilStore.Load(context.Background()); ok {
		t.Fatal("expected nil store to report no user")
	}
}

func TestStoreLoadCorruptFailsSoft(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"not json":       "{not json",
		"wrong shape":    `["a","b"]`,
		"missing id":     `{"name":"x","lastUnlockedDay":1}`,
		"zero watermark": `{"id":"x","lastUnlockedDay":0}`,
	}
	for name, payload := range cases {
		payload := payload
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			slot := &MemorySlot{}
			_ = slot.Put(ctx, []byte(payload))

			if _, ok := NewStore(slot).Load(ctx); ok {
				t.Fatalf("expected corrupt payload %q to yield no user", payload)
			}
			if _, present := slot.Get(ctx); present {
				t.Fatal("expected corrupt payload to be erased")
			}
		})
	}
}

func TestStoreClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	slot := &MemorySlot{}
	store := NewStore(slot)
	if err := store.Set(ctx, sampleUser()); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, ok := NewStore(slot).Load(ctx); ok {
		t.Fatal("expected no user after clear and reload")
	}
}

func TestStoreFieldNamesInSlot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	slot := &MemorySlot{}
	if err := NewStore(slot).Set(ctx, sampleUser()); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	raw, _ := slot.Get(ctx)
	for _, key := range []string{`"id"`, `"isAdmin"`, `"progressPercentage"`, `"lastUnlockedDay"`, `"createdAt"`} {
		if !strings.Contains(string(raw), key) {
			t.Fatalf("expected %s in slot payload %s", key, raw)
		}
	}
}

func TestManagerSlotSurvivesCommit(t *testing.T) {
	t.Parallel()

	first := scs.New()
	ctx, err := first.Load(context.Background(), "")
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if err := NewStore(NewManagerSlot(first)).Set(ctx, sampleUser()); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	token, _, err := first.Commit(ctx)
	if err != nil {
		t.Fatalf("commit session: %v", err)
	}

	second := scs.New()
	second.Store = first.Store
	ctx2, err := second.Load(context.Background(), token)
	if err != nil {
		t.Fatalf("reload session: %v", err)
	}
	got, ok := NewStore(NewManagerSlot(second)).Load(ctx2)
	if !ok || got.ID != sampleUser().ID {
		t.Fatalf("expected user to survive commit, got %+v (ok=%t)", got, ok)
	}

	if err := NewStore(NewManagerSlot(second)).Clear(ctx2); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if second.Exists(ctx2, SlotKey) {
		t.Fatal("expected slot key to be removed")
	}
}
