package driven

import (
	"context"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
)

// SpecCodeStore handles spec code reads (PostgreSQL). Spec codes are
// created by ingestion tooling; the core never writes them.
type SpecCodeStore interface {
	// GetByCode retrieves a spec code by its code string (e.g. "22 40 00").
	// Returns domain.ErrNotFound when it does not exist.
	GetByCode(ctx context.Context, code string) (*domain.SpecCode, error)

	// Get retrieves a spec code by ID
	Get(ctx context.Context, id int64) (*domain.SpecCode, error)

	// List returns spec codes with pagination, optionally filtered by division
	List(ctx context.Context, division *int, limit, offset int) ([]*domain.SpecCode, error)
}
