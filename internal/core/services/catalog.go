package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
	"github.com/crosswalk-labs/crosswalk-core/internal/core/ports/driven"
	"github.com/crosswalk-labs/crosswalk-core/internal/core/ports/driving"
)

// Ensure catalogService implements CatalogService
var _ driving.CatalogService = (*catalogService)(nil)

// catalogService implements read access to the code catalog
type catalogService struct {
	specCodes driven.SpecCodeStore
	sections  driven.SectionStore
	documents driven.DocumentStore
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	specCodes driven.SpecCodeStore,
	sections driven.SectionStore,
	documents driven.DocumentStore,
) driving.CatalogService {
	return &catalogService{
		specCodes: specCodes,
		sections:  sections,
		documents: documents,
	}
}

func (s *catalogService) GetSpecCode(ctx context.Context, code string) (*domain.SpecCode, error) {
	return s.specCodes.GetByCode(ctx, code)
}

func (s *catalogService) ListSpecCodes(ctx context.Context, division *int, limit, offset int) ([]*domain.SpecCode, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}
	return s.specCodes.List(ctx, division, limit, offset)
}

func (s *catalogService) GetDocument(ctx context.Context, id int64) (*domain.CodeDocument, error) {
	return s.documents.Get(ctx, id)
}

func (s *catalogService) ListDocuments(ctx context.Context, filters domain.SearchFilters, limit, offset int) ([]*domain.CodeDocument, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.documents.List(ctx, filters, limit, offset)
}

func (s *catalogService) GetSection(ctx context.Context, id int64) (*domain.CodeSection, error) {
	return s.sections.Get(ctx, id)
}

func (s *catalogService) CuratedSections(ctx context.Context, code string, filters domain.SearchFilters) ([]*domain.CuratedSection, error) {
	specCode, err := s.specCodes.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSpecCodeNotFound
		}
		return nil, fmt.Errorf("failed to load spec code: %w", err)
	}
	return s.sections.FindCurated(ctx, specCode.ID, filters)
}
