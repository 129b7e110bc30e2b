package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
	"github.com/crosswalk-labs/crosswalk-core/internal/core/ports/driven"
	"github.com/crosswalk-labs/crosswalk-core/internal/core/ports/driving"
	"github.com/crosswalk-labs/crosswalk-core/internal/matcher"
)

// Ensure searchService implements SearchService
var _ driving.SearchService = (*searchService)(nil)

// searchStage tracks progress through the two-stage search policy:
// curated lookup first, keyword fallback second.
type searchStage int

const (
	stageCurated searchStage = iota
	stageFallback
	stageDone
)

// fallbackCacheTTL bounds how stale a cached fallback result may get.
// Mapping writes invalidate eagerly; the TTL covers section ingestion.
const fallbackCacheTTL = 5 * time.Minute

// searchService implements the SearchService interface
type searchService struct {
	specCodes driven.SpecCodeStore
	sections  driven.SectionStore
	matchers  *matcher.Cache
	results   driven.ResultCache // optional, may be nil
	logger    *slog.Logger
	matchOpts domain.MatchOptions
}

// NewSearchService creates a new SearchService. results may be nil, in
// which case fallback matches are recomputed on every search.
func NewSearchService(
	specCodes driven.SpecCodeStore,
	sections driven.SectionStore,
	matchers *matcher.Cache,
	results driven.ResultCache,
	logger *slog.Logger,
) driving.SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &searchService{
		specCodes: specCodes,
		sections:  sections,
		matchers:  matchers,
		results:   results,
		logger:    logger,
		matchOpts: domain.DefaultMatchOptions(),
	}
}

// Search resolves a spec code to code sections: curated mappings when
// they exist, keyword-match suggestions otherwise. Fallback suggestions
// are never persisted here; synthesis is a separate explicit action.
func (s *searchService) Search(ctx context.Context, code string, filters domain.SearchFilters) (*domain.SearchResult, error) {
	start := time.Now()

	specCode, err := s.specCodes.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSpecCodeNotFound
		}
		return nil, fmt.Errorf("failed to load spec code: %w", err)
	}

	result := &domain.SearchResult{
		SpecCode: specCode,
		Sections: []*domain.RankedSection{},
		Source:   domain.SearchSourceNoMatch,
	}

	for stage := stageCurated; stage != stageDone; {
		switch stage {
		case stageCurated:
			curated, err := s.sections.FindCurated(ctx, specCode.ID, filters)
			if err != nil {
				// Curated lookup failures indicate a data-access
				// problem and always propagate.
				return nil, fmt.Errorf("curated lookup failed: %w", err)
			}
			if len(curated) > 0 {
				for _, cs := range curated {
					result.Sections = append(result.Sections, &domain.RankedSection{
						Section:   cs.Section,
						Relevance: cs.Mapping.Relevance,
					})
				}
				result.Source = domain.SearchSourceCurated
				stage = stageDone
				break
			}
			stage = stageFallback

		case stageFallback:
			if cached := s.cachedFallback(ctx, code, filters, start); cached != nil {
				return cached, nil
			}

			matches, err := s.fallbackMatch(ctx, specCode, filters)
			if err != nil {
				// The caller always gets a well-formed envelope from
				// the fallback path; log and degrade to no_match.
				s.logger.Warn("fallback matching failed",
					"spec_code", code,
					"error", err)
				stage = stageDone
				break
			}
			if len(matches) > 0 {
				for _, m := range matches {
					result.Sections = append(result.Sections, &domain.RankedSection{
						Section:      m.Section,
						Score:        m.Score,
						Confidence:   m.Confidence,
						MatchedTerms: m.MatchedTerms,
					})
				}
				result.Source = domain.SearchSourceFallback
				s.storeFallback(ctx, code, filters, result)
			}
			stage = stageDone
		}
	}

	result.TotalResults = len(result.Sections)
	result.Took = time.Since(start)
	return result, nil
}

// fallbackMatch obtains a corpus snapshot restricted to the document
// family filter and ranks it against the spec code.
func (s *searchService) fallbackMatch(ctx context.Context, specCode *domain.SpecCode, filters domain.SearchFilters) ([]*domain.MatchResult, error) {
	m, err := matcherFor(ctx, s.matchers, s.sections, filters.DocumentFamily)
	if err != nil {
		return nil, err
	}
	return m.Match(specCode, s.matchOpts)
}

func (s *searchService) cachedFallback(ctx context.Context, code string, filters domain.SearchFilters, start time.Time) *domain.SearchResult {
	if s.results == nil {
		return nil
	}
	cached, err := s.results.Get(ctx, resultCacheKey(code, filters))
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("result cache read failed", "spec_code", code, "error", err)
		}
		return nil
	}
	cached.Took = time.Since(start)
	return cached
}

func (s *searchService) storeFallback(ctx context.Context, code string, filters domain.SearchFilters, result *domain.SearchResult) {
	if s.results == nil {
		return
	}
	if err := s.results.Set(ctx, resultCacheKey(code, filters), result, fallbackCacheTTL); err != nil {
		s.logger.Warn("result cache write failed", "spec_code", code, "error", err)
	}
}

// resultCacheKey names a cached fallback result. The spec code leads so
// mapping writes can invalidate every variant for a code.
func resultCacheKey(code string, filters domain.SearchFilters) string {
	family, year, jurisdiction := "", "", ""
	if filters.DocumentFamily != nil {
		family = *filters.DocumentFamily
	}
	if filters.Year != nil {
		year = fmt.Sprintf("%d", *filters.Year)
	}
	if filters.Jurisdiction != nil {
		jurisdiction = *filters.Jurisdiction
	}
	return fmt.Sprintf("%s:%s:%s:%s", code, family, year, jurisdiction)
}

// matcherFor returns the fitted matcher snapshot for the family filter,
// building it from the current section set on a miss. Builds for the
// same key are serialized by the cache.
func matcherFor(ctx context.Context, cache *matcher.Cache, sections driven.SectionStore, family *string) (*matcher.Matcher, error) {
	key := ""
	if family != nil {
		key = *family
	}
	return cache.GetOrBuild(ctx, key, func(ctx context.Context) (*matcher.Matcher, error) {
		corpus, err := sections.FindByDocumentFamily(ctx, family)
		if err != nil {
			return nil, fmt.Errorf("failed to load corpus sections: %w", err)
		}
		return matcher.New(corpus)
	})
}
