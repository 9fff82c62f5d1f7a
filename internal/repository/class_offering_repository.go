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

const classOfferingColumns = `id, course_id, semester, start_time, end_time, location, instructor_id`

// semesterOrder sorts "Season Year" keys chronologically: by year, then Spring, Summer, Fall.
const semesterOrder = `split_part(co.semester, ' ', 2)::int, array_position(ARRAY['Spring','Summer','Fall'], split_part(co.semester, ' ', 1))`

// ClassOfferingRepository persists scheduled class offerings.
type ClassOfferingRepository struct {
	base
}

// NewClassOfferingRepository constructs the repository.
func NewClassOfferingRepository(db *sqlx.DB) *ClassOfferingRepository {
	return &ClassOfferingRepository{base{db: db}}
}

// ListForCourse returns every offering of a course with its instructor name.
func (r *ClassOfferingRepository) ListForCourse(ctx context.Context, courseID string) ([]dto.ClassOfferingItem, error) {
	const query = `SELECT co.semester, co.location, co.start_time, co.end_time, p.first_name, p.last_name
FROM class_offerings co
JOIN professors p ON p.uid = co.instructor_id
WHERE co.course_id = $1
ORDER BY ` + semesterOrder + `, co.start_time`
	var items []dto.ClassOfferingItem
	if err := r.selectAll(ctx, &items, query, courseID); err != nil {
		return nil, fmt.Errorf("list class offerings: %w", err)
	}
	for i := range items {
		items[i].Season = items[i].Semester.Season
		items[i].Year = items[i].Semester.Year
	}
	return items, nil
}

// FindByKey resolves an offering from its (subject, number, season, year) key.
func (r *ClassOfferingRepository) FindByKey(ctx context.Context, key models.ClassKey) (*models.ClassOffering, error) {
	const query = `SELECT co.id, co.course_id, co.semester, co.start_time, co.end_time, co.location, co.instructor_id
FROM class_offerings co
JOIN courses c ON c.id = co.course_id
WHERE c.subject = $1 AND c.number = $2 AND co.semester = $3`
	var offering models.ClassOffering
	if err := r.get(ctx, &offering, query, key.Subject, key.Number, key.Semester().String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find class offering by key: %w", err)
	}
	return &offering, nil
}

// ExistsForCourse reports whether the course already has an offering in semester.
func (r *ClassOfferingRepository) ExistsForCourse(ctx context.Context, courseID string, semester models.Semester) (bool, error) {
	ok, err := r.exists(ctx, `SELECT 1 FROM class_offerings WHERE course_id = $1 AND semester = $2 LIMIT 1`, courseID, semester.String())
	if err != nil {
		return false, fmt.Errorf("check class offering: %w", err)
	}
	return ok, nil
}

// ListInRoom returns the offerings scheduled in a room during a semester.
func (r *ClassOfferingRepository) ListInRoom(ctx context.Context, semester models.Semester, location string) ([]models.ClassOffering, error) {
	query := `SELECT ` + classOfferingColumns + ` FROM class_offerings WHERE semester = $1 AND location = $2 ORDER BY start_time`
	var offerings []models.ClassOffering
	if err := r.selectAll(ctx, &offerings, query, semester.String(), location); err != nil {
		return nil, fmt.Errorf("list room offerings: %w", err)
	}
	return offerings, nil
}

// Create inserts an offering. Store-level uniqueness and room exclusion surface as ErrDuplicate.
func (r *ClassOfferingRepository) Create(ctx context.Context, offering *models.ClassOffering) error {
	if offering.ID == "" {
		offering.ID = uuid.NewString()
	}
	const query = `INSERT INTO class_offerings (id, course_id, semester, start_time, end_time, location, instructor_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.exec(ctx, query,
		offering.ID,
		offering.CourseID,
		offering.Semester.String(),
		offering.Start.String(),
		offering.End.String(),
		offering.Location,
		offering.InstructorID,
	); err != nil {
		return fmt.Errorf("create class offering: %w", err)
	}
	return nil
}

// ListByInstructor returns the classes taught by a professor.
func (r *ClassOfferingRepository) ListByInstructor(ctx context.Context, instructorID string) ([]dto.ProfessorClassItem, error) {
	const query = `SELECT c.subject, c.number, c.name, co.semester
FROM class_offerings co
JOIN courses c ON c.id = co.course_id
WHERE co.instructor_id = $1
ORDER BY ` + semesterOrder + `, c.subject, c.number`
	var items []dto.ProfessorClassItem
	if err := r.selectAll(ctx, &items, query, instructorID); err != nil {
		return nil, fmt.Errorf("list instructor classes: %w", err)
	}
	for i := range items {
		items[i].Season = items[i].Semester.Season
		items[i].Year = items[i].Semester.Year
	}
	return items, nil
}
