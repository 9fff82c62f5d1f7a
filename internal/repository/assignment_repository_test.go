package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAssignmentsFiltersByCategory(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	due := time.Date(2024, 10, 1, 23, 59, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"aname", "cname", "due_at", "submissions"}).
		AddRow("HW1", "Homework", due, 2)
	mock.ExpectQuery(`WHERE cat.class_id = \$1 AND cat.name = \$2\s+GROUP BY`).
		WithArgs("class-1", "Homework").
		WillReturnRows(rows)

	items, err := repo.ListForClass(context.Background(), "class-1", "Homework")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Submissions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAssignmentsAllCategories(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	mock.ExpectQuery(`WHERE cat.class_id = \$1\s+GROUP BY`).
		WithArgs("class-1").
		WillReturnRows(sqlmock.NewRows([]string{"aname", "cname", "due_at", "submissions"}))

	items, err := repo.ListForClass(context.Background(), "class-1", "")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScoreSheetKeepsEmptyCategories(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	rows := sqlmock.NewRows([]string{"category_id", "category_name", "weight", "assignment_id", "max_points", "score"}).
		AddRow("cat-1", "Exams", 60, nil, nil, nil).
		AddRow("cat-2", "Homework", 40, "asg-1", 10, 8)
	mock.ExpectQuery("FROM assignment_categories cat").WithArgs("class-1", "u0000002").WillReturnRows(rows)

	sheet, err := repo.ScoreSheet(context.Background(), "class-1", "u0000002")
	require.NoError(t, err)
	require.Len(t, sheet, 2)
	assert.Nil(t, sheet[0].AssignmentID)
	require.NotNil(t, sheet[1].Score)
	assert.Equal(t, 8, *sheet[1].Score)
}
