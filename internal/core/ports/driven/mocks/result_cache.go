package mocks

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
)

// MockResultCache is a mock implementation of ResultCache for testing.
// TTLs are recorded but never expire.
type MockResultCache struct {
	mu      sync.RWMutex
	entries map[string]*domain.SearchResult
}

// NewMockResultCache creates a new MockResultCache
func NewMockResultCache() *MockResultCache {
	return &MockResultCache{
		entries: make(map[string]*domain.SearchResult),
	}
}

func (m *MockResultCache) Get(ctx context.Context, key string) (*domain.SearchResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result, ok := m.entries[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return result, nil
}

func (m *MockResultCache) Set(ctx context.Context, key string, result *domain.SearchResult, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = result
	return nil
}

func (m *MockResultCache) InvalidateSpecCode(ctx context.Context, specCode string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.entries {
		if strings.HasPrefix(key, specCode+":") {
			delete(m.entries, key)
		}
	}
	return nil
}

// Len returns the number of cached entries
func (m *MockResultCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
