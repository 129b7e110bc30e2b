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
var _ driven.SpecCodeStore = (*SpecCodeStore)(nil)

// SpecCodeStore implements driven.SpecCodeStore using PostgreSQL
type SpecCodeStore struct {
	db *DB
}

// NewSpecCodeStore creates a new SpecCodeStore
func NewSpecCodeStore(db *DB) *SpecCodeStore {
	return &SpecCodeStore{db: db}
}

// GetByCode retrieves a spec code by its code string
func (s *SpecCodeStore) GetByCode(ctx context.Context, code string) (*domain.SpecCode, error) {
	query := `
		SELECT id, code, division, title, description
		FROM spec_codes
		WHERE code = $1
	`
	return s.scanSpecCode(s.db.QueryRowContext(ctx, query, code))
}

// Get retrieves a spec code by ID
func (s *SpecCodeStore) Get(ctx context.Context, id int64) (*domain.SpecCode, error) {
	query := `
		SELECT id, code, division, title, description
		FROM spec_codes
		WHERE id = $1
	`
	return s.scanSpecCode(s.db.QueryRowContext(ctx, query, id))
}

// List returns spec codes with pagination, optionally filtered by division
func (s *SpecCodeStore) List(ctx context.Context, division *int, limit, offset int) ([]*domain.SpecCode, error) {
	query := `
		SELECT id, code, division, title, description
		FROM spec_codes
		WHERE ($1::integer IS NULL OR division = $1)
		ORDER BY code
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, NullInt(division), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list spec codes: %w", err)
	}
	defer rows.Close()

	var codes []*domain.SpecCode
	for rows.Next() {
		var sc domain.SpecCode
		var description sql.NullString
		if err := rows.Scan(&sc.ID, &sc.Code, &sc.Division, &sc.Title, &description); err != nil {
			return nil, err
		}
		sc.Description = StringPtr(description)
		codes = append(codes, &sc)
	}
	return codes, rows.Err()
}

func (s *SpecCodeStore) scanSpecCode(row *sql.Row) (*domain.SpecCode, error) {
	var sc domain.SpecCode
	var description sql.NullString

	err := row.Scan(&sc.ID, &sc.Code, &sc.Division, &sc.Title, &description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan spec code: %w", err)
	}

	sc.Description = StringPtr(description)
	return &sc, nil
}
