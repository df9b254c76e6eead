package memory

import (
	"context"
	"sync"
)

// Store is the in-memory salary table used by tests and the in-memory
// runtime profile.
type Store struct {
	mu       sync.RWMutex
	salaries map[string]uint64
}

func NewStore() *Store {
	return &Store{salaries: map[string]uint64{}}
}

func (s *Store) Salary(_ context.Context, level string) (uint64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	amount, ok := s.salaries[level]
	return amount, ok, nil
}

func (s *Store) SetSalary(_ context.Context, level string, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.salaries[level] = amount
	return nil
}
