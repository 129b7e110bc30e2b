package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
)

// MockMappingStore is a mock implementation of MappingStore for testing
type MockMappingStore struct {
	mu     sync.RWMutex
	nextID int64
	byPair map[string]*domain.Mapping
}

// NewMockMappingStore creates a new MockMappingStore
func NewMockMappingStore() *MockMappingStore {
	return &MockMappingStore{
		byPair: make(map[string]*domain.Mapping),
	}
}

func pairKey(specCodeID, sectionID int64) string {
	return fmt.Sprintf("%d:%d", specCodeID, sectionID)
}

// Count returns the number of stored mappings
func (m *MockMappingStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byPair)
}

func (m *MockMappingStore) Find(ctx context.Context, specCodeID, sectionID int64) (*domain.Mapping, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mapping, ok := m.byPair[pairKey(specCodeID, sectionID)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return mapping, nil
}

func (m *MockMappingStore) Insert(ctx context.Context, mapping *domain.Mapping) (*domain.Mapping, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertLocked(mapping)
}

func (m *MockMappingStore) InsertBatch(ctx context.Context, mappings []*domain.Mapping) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	created := 0
	for _, mapping := range mappings {
		if _, err := m.insertLocked(mapping); err == domain.ErrAlreadyExists {
			continue
		} else if err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (m *MockMappingStore) insertLocked(mapping *domain.Mapping) (*domain.Mapping, error) {
	key := pairKey(mapping.SpecCodeID, mapping.SectionID)
	if _, ok := m.byPair[key]; ok {
		return nil, domain.ErrAlreadyExists
	}

	m.nextID++
	stored := *mapping
	stored.ID = m.nextID
	stored.CreatedAt = time.Now().UTC()
	m.byPair[key] = &stored
	return &stored, nil
}
