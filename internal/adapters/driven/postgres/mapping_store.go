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
var _ driven.MappingStore = (*MappingStore)(nil)

// MappingStore implements driven.MappingStore using PostgreSQL.
// Writes are insert-only: the unique (spec_code_id, section_id)
// constraint turns a repeated pair into a no-op.
type MappingStore struct {
	db *DB
}

// NewMappingStore creates a new MappingStore
func NewMappingStore(db *DB) *MappingStore {
	return &MappingStore{db: db}
}

// Find retrieves the mapping for a (spec code, section) pair
func (s *MappingStore) Find(ctx context.Context, specCodeID, sectionID int64) (*domain.Mapping, error) {
	query := `
		SELECT id, spec_code_id, section_id, relevance, notes, created_at
		FROM mappings
		WHERE spec_code_id = $1 AND section_id = $2
	`

	var m domain.Mapping
	err := s.db.QueryRowContext(ctx, query, specCodeID, sectionID).Scan(
		&m.ID, &m.SpecCodeID, &m.SectionID, &m.Relevance, &m.Notes, &m.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find mapping: %w", err)
	}
	return &m, nil
}

// Insert persists a single mapping, assigning its ID and creation
// timestamp. An existing pair returns domain.ErrAlreadyExists.
func (s *MappingStore) Insert(ctx context.Context, mapping *domain.Mapping) (*domain.Mapping, error) {
	query := `
		INSERT INTO mappings (spec_code_id, section_id, relevance, notes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (spec_code_id, section_id) DO NOTHING
		RETURNING id, created_at
	`

	inserted := *mapping
	err := s.db.QueryRowContext(ctx, query,
		mapping.SpecCodeID, mapping.SectionID, mapping.Relevance, mapping.Notes,
	).Scan(&inserted.ID, &inserted.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert mapping: %w", err)
	}
	return &inserted, nil
}

// InsertBatch persists the mappings in one transaction, skipping pairs
// that already exist, and returns the number actually created
func (s *MappingStore) InsertBatch(ctx context.Context, mappings []*domain.Mapping) (int, error) {
	if len(mappings) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO mappings (spec_code_id, section_id, relevance, notes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (spec_code_id, section_id) DO NOTHING
	`

	created := 0
	err := s.db.Transaction(ctx, func(tx *sql.Tx) error {
		for _, m := range mappings {
			result, err := tx.ExecContext(ctx, query,
				m.SpecCodeID, m.SectionID, m.Relevance, m.Notes,
			)
			if err != nil {
				return fmt.Errorf("failed to insert mapping batch: %w", err)
			}
			rows, err := result.RowsAffected()
			if err != nil {
				return err
			}
			created += int(rows)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
