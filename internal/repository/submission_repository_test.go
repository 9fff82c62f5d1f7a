package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lms-api/internal/models"
)

func TestSubmissionUpsertKeepsScore(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSubmissionRepository(db)

	now := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`ON CONFLICT \(assignment_id, student_id\)\s+DO UPDATE SET contents = EXCLUDED.contents, submitted_at = EXCLUDED.submitted_at\s+RETURNING`).
		WithArgs("asg-1", "u0000002", now, "second draft").
		WillReturnRows(sqlmock.NewRows([]string{"inserted"}).AddRow(false))

	inserted, err := repo.Upsert(context.Background(), &models.Submission{
		AssignmentID: "asg-1",
		StudentID:    "u0000002",
		SubmittedAt:  now,
		Contents:     "second draft",
	})
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionSetScoreWithoutSubmission(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSubmissionRepository(db)

	mock.ExpectExec("UPDATE submissions SET score").
		WithArgs("asg-1", "u0000002", 9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetScore(context.Background(), "asg-1", "u0000002", 9)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSubmissionFindUngraded(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSubmissionRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"assignment_id", "student_id", "submitted_at", "score", "contents"}).
		AddRow("asg-1", "u0000002", now, nil, "draft")
	mock.ExpectQuery("FROM submissions WHERE assignment_id").WithArgs("asg-1", "u0000002").WillReturnRows(rows)

	sub, err := repo.Find(context.Background(), "asg-1", "u0000002")
	require.NoError(t, err)
	assert.False(t, sub.Graded())
	assert.Equal(t, "draft", sub.Contents)
}
