package sessionstore

import (
	"context"
	"sync"
	"time"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/ports"
)

type entry struct {
	payload []byte
	expires time.Time
}

// MemoryStore implements ports.SessionStore in process memory. It is meant
// for a single instance; sessions are lost on restart.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[kernel.UUID]entry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[kernel.UUID]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Load(_ context.Context, token kernel.UUID) (ports.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[token]
	if !ok || !s.now().Before(e.expires) {
		delete(s.entries, token)
		return ports.SessionState{}, ports.ErrSessionNotFound
	}
	e.expires = s.now().Add(s.ttl)
	s.entries[token] = e

	return decode(e.payload)
}

// Save stores an encoded copy, so later changes to state do not leak in.
func (s *MemoryStore) Save(_ context.Context, token kernel.UUID, state ports.SessionState) error {
	payload, err := encode(state)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = entry{payload: payload, expires: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, token kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}

// Sweep drops expired sessions and returns how many were removed.
func (s *MemoryStore) Sweep(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for token, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, token)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
