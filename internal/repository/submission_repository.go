package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/lms-api/internal/dto"
	"github.com/noah-isme/lms-api/internal/models"
)

// SubmissionRepository persists student submissions.
type SubmissionRepository struct {
	base
}

// NewSubmissionRepository constructs the repository.
func NewSubmissionRepository(db *sqlx.DB) *SubmissionRepository {
	return &SubmissionRepository{base{db: db}}
}

// Find returns the submission of a student to an assignment.
func (r *SubmissionRepository) Find(ctx context.Context, assignmentID, studentID string) (*models.Submission, error) {
	const query = `SELECT assignment_id, student_id, submitted_at, score, contents FROM submissions WHERE assignment_id = $1 AND student_id = $2`
	var submission models.Submission
	if err := r.get(ctx, &submission, query, assignmentID, studentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find submission: %w", err)
	}
	return &submission, nil
}

// Upsert stores the submission, replacing contents and time of an existing one.
// The score of a resubmitted row is left untouched. It reports whether a new row was inserted.
func (r *SubmissionRepository) Upsert(ctx context.Context, submission *models.Submission) (bool, error) {
	const query = `INSERT INTO submissions (assignment_id, student_id, submitted_at, score, contents)
VALUES ($1, $2, $3, NULL, $4)
ON CONFLICT (assignment_id, student_id)
DO UPDATE SET contents = EXCLUDED.contents, submitted_at = EXCLUDED.submitted_at
RETURNING (xmax = 0) AS inserted`
	var inserted bool
	if err := r.get(ctx, &inserted, query,
		submission.AssignmentID,
		submission.StudentID,
		submission.SubmittedAt,
		submission.Contents,
	); err != nil {
		return false, fmt.Errorf("upsert submission: %w", mapConstraintError(err))
	}
	return inserted, nil
}

// SetScore records the score of an existing submission.
func (r *SubmissionRepository) SetScore(ctx context.Context, assignmentID, studentID string, score int) error {
	const query = `UPDATE submissions SET score = $3 WHERE assignment_id = $1 AND student_id = $2`
	res, err := r.exec(ctx, query, assignmentID, studentID, score)
	if err != nil {
		return fmt.Errorf("set submission score: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListForAssignment returns the submissions to an assignment with student names.
func (r *SubmissionRepository) ListForAssignment(ctx context.Context, assignmentID string) ([]dto.SubmissionItem, error) {
	const query = `SELECT st.first_name, st.last_name, st.uid, s.submitted_at, s.score
FROM submissions s
JOIN students st ON st.uid = s.student_id
WHERE s.assignment_id = $1
ORDER BY s.submitted_at, st.uid`
	var items []dto.SubmissionItem
	if err := r.selectAll(ctx, &items, query, assignmentID); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return items, nil
}
