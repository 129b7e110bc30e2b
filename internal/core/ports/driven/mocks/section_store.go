package mocks

import (
	"context"
	"sync"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
)

// MockSectionStore is a mock implementation of SectionStore for testing
type MockSectionStore struct {
	mu       sync.RWMutex
	sections map[int64]*domain.CodeSection
	curated  map[int64][]*domain.CuratedSection // keyed by spec code ID

	// CuratedErr, when set, is returned from FindCurated to simulate a
	// data-access failure.
	CuratedErr error
}

// NewMockSectionStore creates a new MockSectionStore
func NewMockSectionStore() *MockSectionStore {
	return &MockSectionStore{
		sections: make(map[int64]*domain.CodeSection),
		curated:  make(map[int64][]*domain.CuratedSection),
	}
}

// Add seeds a section into the mock
func (m *MockSectionStore) Add(section *domain.CodeSection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sections[section.ID] = section
}

// AddCurated seeds a curated mapping result for a spec code
func (m *MockSectionStore) AddCurated(specCodeID int64, cs *domain.CuratedSection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.curated[specCodeID] = append(m.curated[specCodeID], cs)
}

func (m *MockSectionStore) Get(ctx context.Context, id int64) (*domain.CodeSection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sections[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (m *MockSectionStore) FindCurated(ctx context.Context, specCodeID int64, filters domain.SearchFilters) ([]*domain.CuratedSection, error) {
	if m.CuratedErr != nil {
		return nil, m.CuratedErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*domain.CuratedSection
	for _, cs := range m.curated[specCodeID] {
		if !matchesFilters(cs.Section.Document, filters) {
			continue
		}
		out = append(out, cs)
	}
	return out, nil
}

func (m *MockSectionStore) FindByDocumentFamily(ctx context.Context, family *string) ([]*domain.CodeSection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*domain.CodeSection
	for _, s := range m.sections {
		if family != nil && (s.Document == nil || s.Document.Family != *family) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func matchesFilters(doc *domain.CodeDocument, filters domain.SearchFilters) bool {
	if doc == nil {
		return filters.Jurisdiction == nil && filters.Year == nil && filters.DocumentFamily == nil
	}
	if filters.DocumentFamily != nil && doc.Family != *filters.DocumentFamily {
		return false
	}
	if filters.Year != nil && doc.Year != *filters.Year {
		return false
	}
	if filters.Jurisdiction != nil {
		if doc.Jurisdiction == nil || *doc.Jurisdiction != *filters.Jurisdiction {
			return false
		}
	}
	return true
}

// MockDocumentStore is a mock implementation of DocumentStore for testing
type MockDocumentStore struct {
	mu        sync.RWMutex
	documents map[int64]*domain.CodeDocument
}

// NewMockDocumentStore creates a new MockDocumentStore
func NewMockDocumentStore() *MockDocumentStore {
	return &MockDocumentStore{
		documents: make(map[int64]*domain.CodeDocument),
	}
}

// Add seeds a document into the mock
func (m *MockDocumentStore) Add(doc *domain.CodeDocument) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents[doc.ID] = doc
}

func (m *MockDocumentStore) Get(ctx context.Context, id int64) (*domain.CodeDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func (m *MockDocumentStore) List(ctx context.Context, filters domain.SearchFilters, limit, offset int) ([]*domain.CodeDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*domain.CodeDocument
	for _, d := range m.documents {
		if !matchesFilters(d, filters) {
			continue
		}
		out = append(out, d)
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
