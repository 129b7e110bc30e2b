package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
	"github.com/crosswalk-labs/crosswalk-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.SectionStore = (*SectionStore)(nil)

// SectionStore implements driven.SectionStore using PostgreSQL.
// Every query joins the parent document, so sections reach the core
// fully resolved.
type SectionStore struct {
	db *DB
}

// NewSectionStore creates a new SectionStore
func NewSectionStore(db *DB) *SectionStore {
	return &SectionStore{db: db}
}

const sectionColumns = `
	s.id, s.document_id, s.number, s.title, s.chapter, s.description, s.source_url,
	d.id, d.family, d.year, d.jurisdiction, d.title, d.source_url
`

// Get retrieves a section by ID with its document resolved
func (s *SectionStore) Get(ctx context.Context, id int64) (*domain.CodeSection, error) {
	query := `
		SELECT ` + sectionColumns + `
		FROM code_sections s
		JOIN code_documents d ON d.id = s.document_id
		WHERE s.id = $1
	`

	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get section: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrNotFound
	}
	return scanSection(rows)
}

// FindCurated returns the curated sections for a spec code whose parent
// document matches the filters
func (s *SectionStore) FindCurated(ctx context.Context, specCodeID int64, filters domain.SearchFilters) ([]*domain.CuratedSection, error) {
	query := `
		SELECT ` + sectionColumns + `,
			m.id, m.spec_code_id, m.section_id, m.relevance, m.notes, m.created_at
		FROM mappings m
		JOIN code_sections s ON s.id = m.section_id
		JOIN code_documents d ON d.id = s.document_id
		WHERE m.spec_code_id = $1
			AND ($2::varchar IS NULL OR d.family = $2)
			AND ($3::integer IS NULL OR d.year = $3)
			AND ($4::varchar IS NULL OR d.jurisdiction = $4)
		ORDER BY CASE m.relevance
			WHEN 'primary' THEN 1
			WHEN 'secondary' THEN 2
			WHEN 'reference' THEN 3
			ELSE 4
		END, s.number
	`

	rows, err := s.db.QueryContext(ctx, query,
		specCodeID,
		NullString(filters.DocumentFamily),
		NullInt(filters.Year),
		NullString(filters.Jurisdiction),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find curated sections: %w", err)
	}
	defer rows.Close()

	var curated []*domain.CuratedSection
	for rows.Next() {
		section, mapping, err := scanCuratedSection(rows)
		if err != nil {
			return nil, err
		}
		curated = append(curated, &domain.CuratedSection{Section: section, Mapping: mapping})
	}
	return curated, rows.Err()
}

// FindByDocumentFamily returns all sections, restricted to one document
// family when family is non-nil. Ordered by ID so corpus construction
// is deterministic.
func (s *SectionStore) FindByDocumentFamily(ctx context.Context, family *string) ([]*domain.CodeSection, error) {
	query := `
		SELECT ` + sectionColumns + `
		FROM code_sections s
		JOIN code_documents d ON d.id = s.document_id
		WHERE ($1::varchar IS NULL OR d.family = $1)
		ORDER BY s.id
	`

	rows, err := s.db.QueryContext(ctx, query, NullString(family))
	if err != nil {
		return nil, fmt.Errorf("failed to load sections: %w", err)
	}
	defer rows.Close()

	var sections []*domain.CodeSection
	for rows.Next() {
		section, err := scanSection(rows)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	return sections, rows.Err()
}

func scanSection(rows *sql.Rows) (*domain.CodeSection, error) {
	var section domain.CodeSection
	var doc domain.CodeDocument
	var chapter sql.NullInt64
	var description, jurisdiction sql.NullString

	err := rows.Scan(
		&section.ID, &section.DocumentID, &section.Number, &section.Title,
		&chapter, &description, &section.SourceURL,
		&doc.ID, &doc.Family, &doc.Year, &jurisdiction, &doc.Title, &doc.SourceURL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan section: %w", err)
	}

	section.Chapter = IntPtr(chapter)
	section.Description = StringPtr(description)
	doc.Jurisdiction = StringPtr(jurisdiction)
	section.Document = &doc
	return &section, nil
}

func scanCuratedSection(rows *sql.Rows) (*domain.CodeSection, *domain.Mapping, error) {
	var section domain.CodeSection
	var doc domain.CodeDocument
	var mapping domain.Mapping
	var chapter sql.NullInt64
	var description, jurisdiction sql.NullString

	err := rows.Scan(
		&section.ID, &section.DocumentID, &section.Number, &section.Title,
		&chapter, &description, &section.SourceURL,
		&doc.ID, &doc.Family, &doc.Year, &jurisdiction, &doc.Title, &doc.SourceURL,
		&mapping.ID, &mapping.SpecCodeID, &mapping.SectionID,
		&mapping.Relevance, &mapping.Notes, &mapping.CreatedAt,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan curated section: %w", err)
	}

	section.Chapter = IntPtr(chapter)
	section.Description = StringPtr(description)
	doc.Jurisdiction = StringPtr(jurisdiction)
	section.Document = &doc
	return &section, &mapping, nil
}
