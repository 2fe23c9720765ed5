package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"cohort-tools-backend/internal/models"
)

func (s *Storage) ListStudents(ctx context.Context) ([]models.Student, error) {
	query := `SELECT id, attributes FROM students ORDER BY id`

	students := []models.Student{}
	if err := s.db.SelectContext(ctx, &students, query); err != nil {
		return nil, err
	}
	return students, nil
}

func (s *Storage) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	query := `SELECT id, attributes FROM students WHERE id = $1`

	var student models.Student
	if err := s.db.GetContext(ctx, &student, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

func (s *Storage) CreateStudent(ctx context.Context, attrs models.Attributes) (*models.Student, error) {
	query := `
		INSERT INTO students (id, attributes)
		VALUES ($1, $2)
		RETURNING id, attributes
	`

	var student models.Student
	if err := s.db.QueryRowContext(ctx, query, uuid.New().String(), attrs).
		Scan(&student.ID, &student.Attributes); err != nil {
		return nil, err
	}
	return &student, nil
}
