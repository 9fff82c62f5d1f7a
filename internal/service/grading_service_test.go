package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lms-api/internal/dto"
	"github.com/noah-isme/lms-api/internal/models"
	appErrors "github.com/noah-isme/lms-api/pkg/errors"
)

func TestLetterGradeCutoffs(t *testing.T) {
	cases := map[float64]string{
		100: "A", 93: "A", 92.99: "A-", 90: "A-", 87: "B+", 83: "B", 80: "B-",
		77: "C+", 73: "C", 70: "C-", 67: "D+", 63: "D", 60: "D-", 59.99: "E", 0: "E",
	}
	for pct, letter := range cases {
		assert.Equal(t, letter, LetterGrade(pct), "percentage %v", pct)
	}
}

func TestGradePoints(t *testing.T) {
	points, ok := GradePoints("A")
	require.True(t, ok)
	assert.Equal(t, 4.0, points)

	points, ok = GradePoints("B-")
	require.True(t, ok)
	assert.Equal(t, 2.7, points)

	_, ok = GradePoints(models.UngradedMark)
	assert.False(t, ok)
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestClassPercentage(t *testing.T) {
	t.Run("missing submissions earn zero", func(t *testing.T) {
		sheet := []models.ScoreSheetRow{
			{CategoryID: "hw", Weight: 40, AssignmentID: strPtr("hw1"), MaxPoints: intPtr(10), Score: intPtr(10)},
			{CategoryID: "hw", Weight: 40, AssignmentID: strPtr("hw2"), MaxPoints: intPtr(10)},
			{CategoryID: "ex", Weight: 60, AssignmentID: strPtr("mid"), MaxPoints: intPtr(100), Score: intPtr(90)},
		}
		pct, ok := ClassPercentage(sheet)
		require.True(t, ok)
		// (40*0.5 + 60*0.9) / 100
		assert.InDelta(t, 74.0, pct, 0.001)
	})

	t.Run("empty categories are excluded", func(t *testing.T) {
		sheet := []models.ScoreSheetRow{
			{CategoryID: "hw", Weight: 40, AssignmentID: strPtr("hw1"), MaxPoints: intPtr(10), Score: intPtr(8)},
			{CategoryID: "ex", Weight: 60},
		}
		pct, ok := ClassPercentage(sheet)
		require.True(t, ok)
		assert.InDelta(t, 80.0, pct, 0.001)
	})

	t.Run("nothing gradable", func(t *testing.T) {
		_, ok := ClassPercentage([]models.ScoreSheetRow{{CategoryID: "hw", Weight: 40}})
		assert.False(t, ok)
		_, ok = ClassPercentage(nil)
		assert.False(t, ok)
	})
}

func TestGPAWithoutGradedClasses(t *testing.T) {
	f := newFixture()
	f.mustCourse()
	_, err := f.offering(fall2024, clock(9, 0), clock(10, 0), "X")
	require.NoError(t, err)
	_, err = f.enrollments.Enroll(context.Background(), dto.EnrollRequest{ClassRef: fall2024, StudentID: "u0000002"})
	require.NoError(t, err)

	gpa, err := f.grading.GPA(context.Background(), "u0000002")
	require.NoError(t, err)
	assert.Equal(t, 0.0, gpa.GPA)
	assert.Zero(t, gpa.GradedClasses)
}

func TestGPAOfSingleAClass(t *testing.T) {
	f := newFixture()
	f.store.enrollments[pairKey{"u0000002", "class-a"}] = &models.Enrollment{StudentID: "u0000002", ClassID: "class-a", Grade: strPtr("A")}
	f.store.enrollments[pairKey{"u0000002", "class-b"}] = &models.Enrollment{StudentID: "u0000002", ClassID: "class-b"}

	gpa, err := f.grading.GPA(context.Background(), "u0000002")
	require.NoError(t, err)
	assert.Equal(t, 4.0, gpa.GPA)
	assert.Equal(t, 1, gpa.GradedClasses)
}

func TestGPAAveragesGradePoints(t *testing.T) {
	f := newFixture()
	f.store.enrollments[pairKey{"u0000002", "class-a"}] = &models.Enrollment{StudentID: "u0000002", ClassID: "class-a", Grade: strPtr("A")}
	f.store.enrollments[pairKey{"u0000002", "class-b"}] = &models.Enrollment{StudentID: "u0000002", ClassID: "class-b", Grade: strPtr("C")}

	gpa, err := f.grading.GPA(context.Background(), "u0000002")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, gpa.GPA, 0.0001)
}

func TestGPAUnknownStudent(t *testing.T) {
	f := newFixture()

	_, err := f.grading.GPA(context.Background(), "u0000404")
	assert.True(t, appErrors.IsNotFound(err))
}

func TestClassGradeUngraded(t *testing.T) {
	f := classWithHomework(t)
	f.store.assignments = nil

	result, err := f.grading.ClassGrade(context.Background(), fall2024.Key(), "u0000002")
	require.NoError(t, err)
	assert.False(t, result.Graded)
	assert.Equal(t, models.UngradedMark, result.Letter)
}

func TestClassGradeRoundsOnlyForDisplay(t *testing.T) {
	f := classWithHomework(t)
	ctx := context.Background()
	f.store.assignments[0].MaxPoints = 100000
	gradeHomework(t, f, "u0000002", 92996)

	result, err := f.grading.ClassGrade(ctx, fall2024.Key(), "u0000002")
	require.NoError(t, err)
	assert.Equal(t, 93.0, result.Percentage)
	assert.Equal(t, "A-", result.Letter)
}
