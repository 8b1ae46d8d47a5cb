package signup

import (
	"context"
	"sync"
	"time"
)

// MemoryStore respalda los tests y el desarrollo sin redis.
type MemoryStore struct {
	mu  sync.Mutex
	m   map[string]entry
	now func() time.Time
}

type entry struct {
	draft     Draft
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		m:   make(map[string]entry),
		now: time.Now,
	}
}

func (s *MemoryStore) Put(ctx context.Context, token string, d Draft, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m[token] = entry{draft: d, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.m[token]
	if !ok || s.now().After(e.expiresAt) {
		delete(s.m, token)
		return Draft{}, ErrDraftNotFound
	}
	return e.draft, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.m, token)
	return nil
}
