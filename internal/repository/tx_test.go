package repository

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lms-api/internal/models"
)

func TestWithinTxCommits(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	tx := NewTransactor(db)
	repo := NewCourseRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO courses").
		WithArgs(sqlmock.AnyArg(), "CS", 5530, "Databases").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tx.WithinTx(context.Background(), func(ctx context.Context) error {
		return repo.Create(ctx, &models.Course{Subject: "CS", Number: 5530, Name: "Databases"})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	tx := NewTransactor(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := tx.WithinTx(context.Background(), func(ctx context.Context) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTxJoinsOuterTransaction(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	tx := NewTransactor(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tx.WithinTx(context.Background(), func(ctx context.Context) error {
		return tx.WithinTx(ctx, func(context.Context) error { return nil })
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUniqueViolationMapsToErrDuplicate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectExec("INSERT INTO courses").
		WillReturnError(&pq.Error{Code: pqUniqueViolation, Constraint: "uq_courses_subject_number"})

	err := repo.Create(context.Background(), &models.Course{Subject: "CS", Number: 5530, Name: "Databases"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMapConstraintErrorLeavesOtherErrors(t *testing.T) {
	fk := &pq.Error{Code: "23503"}
	assert.Same(t, error(fk), mapConstraintError(fk))
	assert.ErrorIs(t, mapConstraintError(&pq.Error{Code: pqExclusionViolation}), ErrDuplicate)
}

func pqUnique(constraint string) error {
	return &pq.Error{Code: pqUniqueViolation, Constraint: constraint}
}
