package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
	"github.com/crosswalk-labs/crosswalk-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore implements driven.DocumentStore using PostgreSQL
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a new DocumentStore
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Get retrieves a document by ID
func (s *DocumentStore) Get(ctx context.Context, id int64) (*domain.CodeDocument, error) {
	query := `
		SELECT id, family, year, jurisdiction, title, source_url
		FROM code_documents
		WHERE id = $1
	`

	doc, err := scanDocument(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// List returns documents matching the filters with pagination
func (s *DocumentStore) List(ctx context.Context, filters domain.SearchFilters, limit, offset int) ([]*domain.CodeDocument, error) {
	query := `
		SELECT id, family, year, jurisdiction, title, source_url
		FROM code_documents
		WHERE ($1::varchar IS NULL OR family = $1)
			AND ($2::integer IS NULL OR year = $2)
			AND ($3::varchar IS NULL OR jurisdiction = $3)
		ORDER BY family, year DESC, id
		LIMIT $4 OFFSET $5
	`

	rows, err := s.db.QueryContext(ctx, query,
		NullString(filters.DocumentFamily),
		NullInt(filters.Year),
		NullString(filters.Jurisdiction),
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []*domain.CodeDocument
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// rowScanner covers *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*domain.CodeDocument, error) {
	var doc domain.CodeDocument
	var jurisdiction sql.NullString

	err := row.Scan(&doc.ID, &doc.Family, &doc.Year, &jurisdiction, &doc.Title, &doc.SourceURL)
	if err != nil {
		return nil, err
	}

	doc.Jurisdiction = StringPtr(jurisdiction)
	return &doc, nil
}
