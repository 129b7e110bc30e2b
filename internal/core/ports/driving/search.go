package driving

import (
	"context"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
)

// SearchService resolves a spec code to the code sections governing it.
// Curated mappings answer first; the keyword matcher supplies
// suggestions when no curation exists.
type SearchService interface {
	// Search looks up sections for the spec code string. Returns
	// domain.ErrSpecCodeNotFound when the code does not exist; every
	// other fallback-stage failure degrades to a no_match result.
	Search(ctx context.Context, code string, filters domain.SearchFilters) (*domain.SearchResult, error)
}
