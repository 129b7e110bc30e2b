package driving

import (
	"context"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
)

// CatalogService exposes read access to the code catalog for the HTTP
// layer: spec codes, documents and sections.
type CatalogService interface {
	// GetSpecCode retrieves a spec code by its code string
	GetSpecCode(ctx context.Context, code string) (*domain.SpecCode, error)

	// ListSpecCodes returns spec codes, optionally filtered by division
	ListSpecCodes(ctx context.Context, division *int, limit, offset int) ([]*domain.SpecCode, error)

	// GetDocument retrieves a code document by ID
	GetDocument(ctx context.Context, id int64) (*domain.CodeDocument, error)

	// ListDocuments returns documents matching the filters
	ListDocuments(ctx context.Context, filters domain.SearchFilters, limit, offset int) ([]*domain.CodeDocument, error)

	// GetSection retrieves a code section by ID
	GetSection(ctx context.Context, id int64) (*domain.CodeSection, error)

	// CuratedSections returns the curated sections for a spec code
	CuratedSections(ctx context.Context, code string, filters domain.SearchFilters) ([]*domain.CuratedSection, error)
}
