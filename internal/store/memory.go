package store

import (
	"context"
	"sync"
)

// Memory stores claims in memory. It is the dev-mode backend and the test
// fake; safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	claims map[string]Claim
}

// NewMemory creates an in-memory claim store.
func NewMemory() *Memory {
	return &Memory{claims: make(map[string]Claim)}
}

func (s *Memory) Put(_ context.Context, c Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claims[c.ID] = c
	return nil
}

func (s *Memory) Get(_ context.Context, id string) (Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.claims[id]; ok {
		return c, nil
	}
	return Claim{}, ErrNotFound
}

func (s *Memory) Scan(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.claims))
	for id := range s.claims {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Memory) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.claims, id)
	return nil
}
