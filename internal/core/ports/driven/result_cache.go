package driven

import (
	"context"
	"time"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
)

// ResultCache caches assembled search results (Redis, optional). A nil
// cache is valid: the orchestrator simply recomputes every search.
// Entries for a spec code are invalidated whenever its mappings change.
type ResultCache interface {
	// Get retrieves a cached result. Returns domain.ErrNotFound on a miss.
	Get(ctx context.Context, key string) (*domain.SearchResult, error)

	// Set stores a result under the key with a TTL
	Set(ctx context.Context, key string, result *domain.SearchResult, ttl time.Duration) error

	// InvalidateSpecCode drops every cached result for the spec code
	InvalidateSpecCode(ctx context.Context, specCode string) error
}
