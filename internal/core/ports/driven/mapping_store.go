package driven

import (
	"context"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
)

// MappingStore handles curated mapping persistence (PostgreSQL).
// Mappings are insert-only: existing (spec code, section) pairs are
// skipped, never updated.
type MappingStore interface {
	// Find retrieves the mapping for a (spec code, section) pair.
	// Returns domain.ErrNotFound when no mapping exists.
	Find(ctx context.Context, specCodeID, sectionID int64) (*domain.Mapping, error)

	// Insert persists a single mapping, assigning its ID and creation
	// timestamp. Returns domain.ErrAlreadyExists when the pair is
	// already mapped.
	Insert(ctx context.Context, mapping *domain.Mapping) (*domain.Mapping, error)

	// InsertBatch persists the mappings in one transaction, skipping
	// pairs that already exist, and returns the number actually
	// created. Either all new rows become visible or none do.
	InsertBatch(ctx context.Context, mappings []*domain.Mapping) (int, error)
}
