package mocks

import (
	"context"
	"sync"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
)

// MockSpecCodeStore is a mock implementation of SpecCodeStore for testing
type MockSpecCodeStore struct {
	mu     sync.RWMutex
	byID   map[int64]*domain.SpecCode
	byCode map[string]*domain.SpecCode
}

// NewMockSpecCodeStore creates a new MockSpecCodeStore
func NewMockSpecCodeStore() *MockSpecCodeStore {
	return &MockSpecCodeStore{
		byID:   make(map[int64]*domain.SpecCode),
		byCode: make(map[string]*domain.SpecCode),
	}
}

// Add seeds a spec code into the mock
func (m *MockSpecCodeStore) Add(code *domain.SpecCode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[code.ID] = code
	m.byCode[code.Code] = code
}

func (m *MockSpecCodeStore) GetByCode(ctx context.Context, code string) (*domain.SpecCode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sc, ok := m.byCode[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return sc, nil
}

func (m *MockSpecCodeStore) Get(ctx context.Context, id int64) (*domain.SpecCode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sc, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return sc, nil
}

func (m *MockSpecCodeStore) List(ctx context.Context, division *int, limit, offset int) ([]*domain.SpecCode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.SpecCode
	for _, sc := range m.byID {
		if division != nil && sc.Division != *division {
			continue
		}
		out = append(out, sc)
	}
	if offset > len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
