package driven

import (
	"context"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
)

// SectionStore handles code section reads (PostgreSQL). Sections always
// come back with their parent document resolved, so the core never
// probes for missing relationships.
type SectionStore interface {
	// Get retrieves a section by ID with its document resolved.
	// Returns domain.ErrNotFound when it does not exist.
	Get(ctx context.Context, id int64) (*domain.CodeSection, error)

	// FindCurated returns the sections curated for a spec code whose
	// parent document matches the filters, together with the mappings
	// that curate them.
	FindCurated(ctx context.Context, specCodeID int64, filters domain.SearchFilters) ([]*domain.CuratedSection, error)

	// FindByDocumentFamily returns every section, or only those whose
	// document belongs to the given family when family is non-nil.
	// Used to assemble the fallback matching corpus.
	FindByDocumentFamily(ctx context.Context, family *string) ([]*domain.CodeSection, error)
}

// DocumentStore handles code document reads (PostgreSQL).
type DocumentStore interface {
	// Get retrieves a document by ID.
	// Returns domain.ErrNotFound when it does not exist.
	Get(ctx context.Context, id int64) (*domain.CodeDocument, error)

	// List returns documents matching the filters with pagination.
	List(ctx context.Context, filters domain.SearchFilters, limit, offset int) ([]*domain.CodeDocument, error)
}
