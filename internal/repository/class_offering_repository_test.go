package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lms-api/internal/models"
)

func TestListInRoom(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassOfferingRepository(db)

	semester := models.Semester{Season: models.SeasonFall, Year: 2024}
	rows := sqlmock.NewRows([]string{"id", "course_id", "semester", "start_time", "end_time", "location", "instructor_id"}).
		AddRow("class-1", "course-1", "Fall 2024", "09:00:00", "10:00:00", "WEB L104", "u0000001")
	mock.ExpectQuery(regexp.QuoteMeta("FROM class_offerings WHERE semester = $1 AND location = $2")).
		WithArgs("Fall 2024", "WEB L104").
		WillReturnRows(rows)

	offerings, err := repo.ListInRoom(context.Background(), semester, "WEB L104")
	require.NoError(t, err)
	require.Len(t, offerings, 1)
	assert.Equal(t, models.ClockTime{Hour: 10}, offerings[0].End)
	assert.Equal(t, semester, offerings[0].Semester)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClassOfferingExclusionViolation(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassOfferingRepository(db)

	mock.ExpectExec("INSERT INTO class_offerings").
		WillReturnError(&pq.Error{Code: pqExclusionViolation, Constraint: "ex_class_offerings_room_overlap"})

	err := repo.Create(context.Background(), &models.ClassOffering{
		CourseID:     "course-1",
		Semester:     models.Semester{Season: models.SeasonFall, Year: 2024},
		Start:        models.ClockTime{Hour: 10},
		End:          models.ClockTime{Hour: 11},
		Location:     "WEB L104",
		InstructorID: "u0000001",
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestFindClassOfferingByKey(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassOfferingRepository(db)

	rows := sqlmock.NewRows([]string{"id", "course_id", "semester", "start_time", "end_time", "location", "instructor_id"}).
		AddRow("class-1", "course-1", "Fall 2024", "09:00:00", "10:20:00", "WEB L104", "u0000001")
	mock.ExpectQuery("JOIN courses c ON c.id = co.course_id").
		WithArgs("CS", 5530, "Fall 2024").
		WillReturnRows(rows)

	offering, err := repo.FindByKey(context.Background(), models.ClassKey{Subject: "CS", Number: 5530, Season: "Fall", Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, "class-1", offering.ID)
	assert.Equal(t, models.ClockTime{Hour: 10, Minute: 20}, offering.End)
}

func TestListByInstructorOrdersChronologically(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassOfferingRepository(db)

	rows := sqlmock.NewRows([]string{"subject", "number", "name", "semester"}).
		AddRow("CS", 5530, "Databases", "Spring 2024").
		AddRow("CS", 6016, "Algorithms", "Fall 2025")
	mock.ExpectQuery(regexp.QuoteMeta("array_position(ARRAY['Spring','Summer','Fall']")).
		WithArgs("u0000001").
		WillReturnRows(rows)

	items, err := repo.ListByInstructor(context.Background(), "u0000001")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Spring", items[0].Season)
	assert.Equal(t, 2025, items[1].Year)
	assert.NoError(t, mock.ExpectationsWereMet())
}
