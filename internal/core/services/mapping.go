package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
	"github.com/crosswalk-labs/crosswalk-core/internal/core/ports/driven"
	"github.com/crosswalk-labs/crosswalk-core/internal/core/ports/driving"
	"github.com/crosswalk-labs/crosswalk-core/internal/matcher"
)

// Ensure mappingService implements MappingService
var _ driving.MappingService = (*mappingService)(nil)

// mappingService implements the MappingService interface
type mappingService struct {
	specCodes driven.SpecCodeStore
	sections  driven.SectionStore
	mappings  driven.MappingStore
	matchers  *matcher.Cache
	results   driven.ResultCache // optional, may be nil
	logger    *slog.Logger
}

// NewMappingService creates a new MappingService
func NewMappingService(
	specCodes driven.SpecCodeStore,
	sections driven.SectionStore,
	mappings driven.MappingStore,
	matchers *matcher.Cache,
	results driven.ResultCache,
	logger *slog.Logger,
) driving.MappingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &mappingService{
		specCodes: specCodes,
		sections:  sections,
		mappings:  mappings,
		matchers:  matchers,
		results:   results,
		logger:    logger,
	}
}

// Synthesize runs the keyword matcher for a spec code and persists the
// matches as mappings in one transaction. Pairs that already exist are
// skipped inside the transaction, so retries create nothing twice.
func (s *mappingService) Synthesize(ctx context.Context, req driving.SynthesizeRequest) (*driving.SynthesizeResult, error) {
	specCode, err := s.specCodes.GetByCode(ctx, req.SpecCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSpecCodeNotFound
		}
		return nil, fmt.Errorf("failed to load spec code: %w", err)
	}

	opts := domain.DefaultMatchOptions()
	if req.TopN > 0 {
		opts.TopN = req.TopN
	}
	if req.MinScore > 0 {
		opts.MinScore = req.MinScore
	}
	relevanceMap := req.RelevanceMap
	if relevanceMap == nil {
		relevanceMap = domain.DefaultRelevanceMap()
	}

	m, err := matcherFor(ctx, s.matchers, s.sections, req.DocumentFamily)
	if err != nil {
		return nil, fmt.Errorf("failed to build matcher: %w", err)
	}
	matches, err := m.Match(specCode, opts)
	if err != nil {
		return nil, fmt.Errorf("matching failed: %w", err)
	}

	candidates := make([]*domain.Mapping, 0, len(matches))
	for _, match := range matches {
		candidates = append(candidates, &domain.Mapping{
			SpecCodeID: specCode.ID,
			SectionID:  match.Section.ID,
			Relevance:  relevanceMap.Relevance(match.Confidence),
			Notes:      domain.SynthesizedNotes(match.Score, match.MatchedTerms),
		})
	}

	created := 0
	if len(candidates) > 0 {
		created, err = s.mappings.InsertBatch(ctx, candidates)
		if err != nil {
			return nil, fmt.Errorf("failed to insert mappings: %w", err)
		}
	}

	if created > 0 {
		s.invalidateResults(ctx, specCode.Code)
		s.logger.Info("synthesized mappings",
			"spec_code", specCode.Code,
			"considered", len(matches),
			"created", created)
	}

	return &driving.SynthesizeResult{
		SpecCode:   specCode.Code,
		Considered: len(matches),
		Created:    created,
	}, nil
}

// Create persists one curator-supplied mapping.
func (s *mappingService) Create(ctx context.Context, req driving.CreateMappingRequest) (*domain.Mapping, error) {
	if !req.Relevance.IsValid() {
		return nil, fmt.Errorf("%w: relevance %q", domain.ErrInvalidInput, req.Relevance)
	}

	specCode, err := s.specCodes.Get(ctx, req.SpecCodeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSpecCodeNotFound
		}
		return nil, fmt.Errorf("failed to load spec code: %w", err)
	}
	if _, err := s.sections.Get(ctx, req.SectionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: section %d", domain.ErrNotFound, req.SectionID)
		}
		return nil, fmt.Errorf("failed to load section: %w", err)
	}

	mapping, err := s.mappings.Insert(ctx, &domain.Mapping{
		SpecCodeID: req.SpecCodeID,
		SectionID:  req.SectionID,
		Relevance:  req.Relevance,
		Notes:      req.Notes,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateResults(ctx, specCode.Code)
	return mapping, nil
}

func (s *mappingService) invalidateResults(ctx context.Context, specCode string) {
	if s.results == nil {
		return
	}
	if err := s.results.InvalidateSpecCode(ctx, specCode); err != nil {
		s.logger.Warn("result cache invalidation failed", "spec_code", specCode, "error", err)
	}
}
