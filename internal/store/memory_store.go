package store

import (
	"sync"

	"github.com/danicode12/stat139-nhl-project/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of the dataset in memory.
type MemoryStore struct {
	mu      sync.RWMutex
	records []domain.DerivedRecord
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// ListRecords returns a copy of the current dataset.
func (s *MemoryStore) ListRecords() ([]domain.DerivedRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.DerivedRecord, len(s.records))
	copy(result, s.records)
	return result, nil
}

// SetRecords replaces the existing dataset with a new build.
func (s *MemoryStore) SetRecords(records []domain.DerivedRecord) error {
	snapshot := make([]domain.DerivedRecord, len(records))
	copy(snapshot, records)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = snapshot
	return nil
}

// Len reports the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
