package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/lms-api/internal/dto"
	"github.com/noah-isme/lms-api/internal/models"
)

// CourseRepository persists catalog courses.
type CourseRepository struct {
	base
}

// NewCourseRepository constructs the repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{base{db: db}}
}

// ListBySubject returns the courses of a department ordered by number.
func (r *CourseRepository) ListBySubject(ctx context.Context, subject string) ([]dto.CourseItem, error) {
	const query = `SELECT number, name FROM courses WHERE subject = $1 ORDER BY number`
	var items []dto.CourseItem
	if err := r.selectAll(ctx, &items, query, subject); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return items, nil
}

// FindByNumber resolves a course by its natural key.
func (r *CourseRepository) FindByNumber(ctx context.Context, subject string, number int) (*models.Course, error) {
	const query = `SELECT id, subject, number, name FROM courses WHERE subject = $1 AND number = $2`
	var course models.Course
	if err := r.get(ctx, &course, query, subject, number); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return &course, nil
}

// Exists reports whether (subject, number) is already taken.
func (r *CourseRepository) Exists(ctx context.Context, subject string, number int) (bool, error) {
	ok, err := r.exists(ctx, `SELECT 1 FROM courses WHERE subject = $1 AND number = $2 LIMIT 1`, subject, number)
	if err != nil {
		return false, fmt.Errorf("check course: %w", err)
	}
	return ok, nil
}

// Create inserts a course. A concurrent duplicate surfaces as ErrDuplicate.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	const query = `INSERT INTO courses (id, subject, number, name) VALUES ($1, $2, $3, $4)`
	if _, err := r.exec(ctx, query, course.ID, course.Subject, course.Number, course.Name); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}
