package session

import (
	"context"
	"sync"

	"github.com/alexedwards/scs/v2"
)

// SlotKey names the single durable entry that holds the serialized current user.
const SlotKey = "manuscrito_user"

// Slot is one named key-value entry that survives restarts.
type Slot interface {
	Get(ctx context.Context) ([]byte, bool)
	Put(ctx context.Context, value []byte) error
	Remove(ctx context.Context) error
}

// ManagerSlot keeps the entry inside the request's scs session. The request context
// must have passed through SessionManager.LoadAndSave (or Load).
type ManagerSlot struct {
	Manager *scs.SessionManager
	Key     string
}

// NewManagerSlot returns a slot stored under SlotKey in sm.
func NewManagerSlot(sm *scs.SessionManager) *ManagerSlot {
	return &ManagerSlot{Manager: sm, Key: SlotKey}
}

func (s *ManagerSlot) Get(ctx context.Context) ([]byte, bool) {
	value, ok := s.Manager.Get(ctx, s.Key).(string)
	if !ok {
		return nil, false
	}
	return []byte(value), true
}

func (s *ManagerSlot) Put(ctx context.Context, value []byte) error {
	s.Manager.Put(ctx, s.Key, string(value))
	return nil
}

func (s *ManagerSlot) Remove(ctx context.Context) error {
	s.Manager.Remove(ctx, s.Key)
	return nil
}

// MemorySlot is a process-local slot, used by tests and tools.
type MemorySlot struct {
	mu    sync.Mutex
	value []byte
	set   bool
}

func (s *MemorySlot) Get(context.Context) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return nil, false
	}
	return append([]byte(nil), s.value...), true
}

func (s *MemorySlot) Put(_ context.Context, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = append([]byte(nil), value...)
	s.set = true
	return nil
}

func (s *MemorySlot) Remove(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = nil
	s.set = false
	return nil
}
