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

// AssignmentRepository persists assignments and the grade projections built on them.
type AssignmentRepository struct {
	base
}

// NewAssignmentRepository constructs the repository.
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{base{db: db}}
}

// ListForClass returns assignments of a class with their submission counts.
// An empty category lists every category.
func (r *AssignmentRepository) ListForClass(ctx context.Context, classID, category string) ([]dto.AssignmentItem, error) {
	query := `SELECT a.name AS aname, cat.name AS cname, a.due_at, COUNT(s.student_id) AS submissions
FROM assignments a
JOIN assignment_categories cat ON cat.id = a.category_id
LEFT JOIN submissions s ON s.assignment_id = a.id
WHERE cat.class_id = $1`
	args := []interface{}{classID}
	if category != "" {
		query += ` AND cat.name = $2`
		args = append(args, category)
	}
	query += `
GROUP BY a.id, a.name, cat.name, a.due_at
ORDER BY cat.name, a.name`

	var items []dto.AssignmentItem
	if err := r.selectAll(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return items, nil
}

// FindByName resolves an assignment inside a category.
func (r *AssignmentRepository) FindByName(ctx context.Context, categoryID, name string) (*models.Assignment, error) {
	const query = `SELECT id, category_id, name, max_points, due_at, contents FROM assignments WHERE category_id = $1 AND name = $2`
	var assignment models.Assignment
	if err := r.get(ctx, &assignment, query, categoryID, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find assignment: %w", err)
	}
	return &assignment, nil
}

// Exists reports whether the category already has an assignment with name.
func (r *AssignmentRepository) Exists(ctx context.Context, categoryID, name string) (bool, error) {
	ok, err := r.exists(ctx, `SELECT 1 FROM assignments WHERE category_id = $1 AND name = $2 LIMIT 1`, categoryID, name)
	if err != nil {
		return false, fmt.Errorf("check assignment: %w", err)
	}
	return ok, nil
}

// Create inserts an assignment.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}
	const query = `INSERT INTO assignments (id, category_id, name, max_points, due_at, contents)
VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.exec(ctx, query,
		assignment.ID,
		assignment.CategoryID,
		assignment.Name,
		assignment.MaxPoints,
		assignment.DueAt,
		assignment.Contents,
	); err != nil {
		return fmt.Errorf("create assignment: %w", err)
	}
	return nil
}

// ListForStudent returns every assignment of a class with the student's score, if any.
func (r *AssignmentRepository) ListForStudent(ctx context.Context, classID, studentID string) ([]dto.StudentAssignmentItem, error) {
	const query = `SELECT a.name AS aname, cat.name AS cname, a.due_at, s.score
FROM assignments a
JOIN assignment_categories cat ON cat.id = a.category_id
LEFT JOIN submissions s ON s.assignment_id = a.id AND s.student_id = $2
WHERE cat.class_id = $1
ORDER BY cat.name, a.name`
	var items []dto.StudentAssignmentItem
	if err := r.selectAll(ctx, &items, query, classID, studentID); err != nil {
		return nil, fmt.Errorf("list student assignments: %w", err)
	}
	return items, nil
}

// ScoreSheet returns the rows needed to compute a student's grade in a class.
func (r *AssignmentRepository) ScoreSheet(ctx context.Context, classID, studentID string) ([]models.ScoreSheetRow, error) {
	const query = `SELECT cat.id AS category_id, cat.name AS category_name, cat.weight, a.id AS assignment_id, a.max_points, s.score
FROM assignment_categories cat
LEFT JOIN assignments a ON a.category_id = cat.id
LEFT JOIN submissions s ON s.assignment_id = a.id AND s.student_id = $2
WHERE cat.class_id = $1
ORDER BY cat.name, a.name`
	var rows []models.ScoreSheetRow
	if err := r.selectAll(ctx, &rows, query, classID, studentID); err != nil {
		return nil, fmt.Errorf("load score sheet: %w", err)
	}
	return rows, nil
}
