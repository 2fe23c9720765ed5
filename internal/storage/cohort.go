package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"cohort-tools-backend/internal/models"
)

func (s *Storage) ListCohorts(ctx context.Context) ([]models.Cohort, error) {
	query := `SELECT id, attributes FROM cohorts ORDER BY id`

	cohorts := []models.Cohort{}
	if err := s.db.SelectContext(ctx, &cohorts, query); err != nil {
		return nil, err
	}
	return cohorts, nil
}

func (s *Storage) GetCohort(ctx context.Context, id string) (*models.Cohort, error) {
	query := `SELECT id, attributes FROM cohorts WHERE id = $1`

	var cohort models.Cohort
	if err := s.db.GetContext(ctx, &cohort, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCohortNotFound
		}
		return nil, err
	}
	return &cohort, nil
}

func (s *Storage) CreateCohort(ctx context.Context, attrs models.Attributes) (*models.Cohort, error) {
	query := `
		INSERT INTO cohorts (id, attributes)
		VALUES ($1, $2)
		RETURNING id, attributes
	`

	var cohort models.Cohort
	if err := s.db.QueryRowContext(ctx, query, uuid.New().String(), attrs).
		Scan(&cohort.ID, &cohort.Attributes); err != nil {
		return nil, err
	}
	return &cohort, nil
}

// UpdateCohort merges the given partial attributes into the stored document
// in a single statement, so the store stays the only arbiter of concurrent
// writes.
func (s *Storage) UpdateCohort(ctx context.Context, id string, attrs models.Attributes) (*models.Cohort, error) {
	query := `
		UPDATE cohorts
		SET attributes = attributes || $2
		WHERE id = $1
		RETURNING id, attributes
	`

	var cohort models.Cohort
	if err := s.db.QueryRowContext(ctx, query, id, attrs).
		Scan(&cohort.ID, &cohort.Attributes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCohortNotFound
		}
		return nil, err
	}
	return &cohort, nil
}
