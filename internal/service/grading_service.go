package service

import (
	"context"
	"database/sql"
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/noah-isme/lms-api/internal/dto"
	"github.com/noah-isme/lms-api/internal/models"
	appErrors "github.com/noah-isme/lms-api/pkg/errors"
)

type gradeCutoff struct {
	min    float64
	letter string
	points float64
}

// Cutoffs are inclusive lower bounds on the class percentage, highest first.
var gradeScale = []gradeCutoff{
	{93, "A", 4.0},
	{90, "A-", 3.7},
	{87, "B+", 3.3},
	{83, "B", 3.0},
	{80, "B-", 2.7},
	{77, "C+", 2.3},
	{73, "C", 2.0},
	{70, "C-", 1.7},
	{67, "D+", 1.3},
	{63, "D", 1.0},
	{60, "D-", 0.7},
	{0, "E", 0.0},
}

// LetterGrade maps a class percentage onto the letter scale.
func LetterGrade(percentage float64) string {
	for _, c := range gradeScale {
		if percentage >= c.min {
			return c.letter
		}
	}
	return gradeScale[len(gradeScale)-1].letter
}

// GradePoints returns the 4.0 scale value of a letter grade.
func GradePoints(letter string) (float64, bool) {
	for _, c := range gradeScale {
		if c.letter == letter {
			return c.points, true
		}
	}
	return 0, false
}

type categoryTotals struct {
	weight   int
	earned   int
	possible int
}

// ClassPercentage computes the weighted class score from a score sheet. Missing or ungraded
// submissions earn 0 of the assignment's points. Categories without assignments, or whose
// assignments are worth no points, are left out. It reports false when nothing is gradable.
// The result is not rounded.
func ClassPercentage(sheet []models.ScoreSheetRow) (float64, bool) {
	totals := make(map[string]*categoryTotals)
	order := make([]string, 0)
	for _, row := range sheet {
		t, ok := totals[row.CategoryID]
		if !ok {
			t = &categoryTotals{weight: row.Weight}
			totals[row.CategoryID] = t
			order = append(order, row.CategoryID)
		}
		if row.AssignmentID == nil || row.MaxPoints == nil {
			continue
		}
		t.possible += *row.MaxPoints
		if row.Score != nil {
			t.earned += *row.Score
		}
	}

	var weighted float64
	var weights int
	for _, id := range order {
		t := totals[id]
		if t.possible == 0 {
			continue
		}
		weighted += float64(t.weight) * float64(t.earned) / float64(t.possible)
		weights += t.weight
	}
	if weights == 0 {
		return 0, false
	}
	return weighted / float64(weights) * 100, true
}

type scoreSheetReader interface {
	ScoreSheet(ctx context.Context, classID, studentID string) ([]models.ScoreSheetRow, error)
}

type enrollmentGradeStore interface {
	GradesForStudent(ctx context.Context, studentID string) ([]models.Enrollment, error)
	GradedStudents(ctx context.Context, classID string) ([]string, error)
	SetGrade(ctx context.Context, studentID, classID string, grade *string) error
}

// GradingService computes class grades and GPAs.
type GradingService struct {
	classes     classOfferingFinder
	scores      scoreSheetReader
	enrollments enrollmentGradeStore
	students    studentChecker
	logger      *zap.Logger
}

// NewGradingService constructs GradingService.
func NewGradingService(classes classOfferingFinder, scores scoreSheetReader, enrollments enrollmentGradeStore, students studentChecker, logger *zap.Logger) *GradingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradingService{classes: classes, scores: scores, enrollments: enrollments, students: students, logger: logger}
}

// ClassGrade computes a student's current grade in a class.
func (s *GradingService) ClassGrade(ctx context.Context, key models.ClassKey, studentID string) (*dto.ClassGradeResult, error) {
	offering, err := resolver{classes: s.classes}.class(ctx, key)
	if err != nil {
		return nil, err
	}
	result, err := s.compute(ctx, offering.ID, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute class grade")
	}
	return result, nil
}

// RecalculateEnrollmentGrade recomputes and stores the letter grade on the student's enrollment.
// Students who submitted without enrolling have no row to update and are skipped.
func (s *GradingService) RecalculateEnrollmentGrade(ctx context.Context, classID, studentID string) (*dto.ClassGradeResult, error) {
	result, err := s.compute(ctx, classID, studentID)
	if err != nil {
		return nil, err
	}
	var grade *string
	if result.Graded {
		letter := result.Letter
		grade = &letter
	}
	if err := s.enrollments.SetGrade(ctx, studentID, classID, grade); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("grade recalculation skipped, student not enrolled", zap.String("class_id", classID), zap.String("student_id", studentID))
			return result, nil
		}
		return nil, err
	}
	return result, nil
}

// RecalculateClassGrades refreshes every grade already assigned in a class. Students whose
// grade is still unassigned keep it that way until a submission of theirs is scored.
func (s *GradingService) RecalculateClassGrades(ctx context.Context, classID string) error {
	students, err := s.enrollments.GradedStudents(ctx, classID)
	if err != nil {
		return err
	}
	for _, studentID := range students {
		if _, err := s.RecalculateEnrollmentGrade(ctx, classID, studentID); err != nil {
			return err
		}
	}
	if len(students) > 0 {
		s.logger.Debug("class grades recalculated", zap.String("class_id", classID), zap.Int("students", len(students)))
	}
	return nil
}

// GPA averages the grade points of every graded class. A student without graded classes has 0.0.
func (s *GradingService) GPA(ctx context.Context, studentID string) (*dto.GPAResult, error) {
	if err := requireStudent(ctx, s.students, studentID); err != nil {
		return nil, err
	}
	enrollments, err := s.enrollments.GradesForStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load grades")
	}

	var total float64
	graded := 0
	for _, e := range enrollments {
		if !e.Graded() {
			continue
		}
		points, ok := GradePoints(*e.Grade)
		if !ok {
			s.logger.Warn("ignoring unknown letter grade", zap.String("student_id", studentID), zap.String("grade", *e.Grade))
			continue
		}
		total += points
		graded++
	}
	if graded == 0 {
		return &dto.GPAResult{GPA: 0.0}, nil
	}
	return &dto.GPAResult{GPA: total / float64(graded), GradedClasses: graded}, nil
}

func (s *GradingService) compute(ctx context.Context, classID, studentID string) (*dto.ClassGradeResult, error) {
	sheet, err := s.scores.ScoreSheet(ctx, classID, studentID)
	if err != nil {
		return nil, err
	}
	percentage, ok := ClassPercentage(sheet)
	if !ok {
		return &dto.ClassGradeResult{Letter: models.UngradedMark}, nil
	}
	return &dto.ClassGradeResult{
		Percentage: math.Round(percentage*100) / 100,
		Letter:     LetterGrade(percentage),
		Graded:     true,
	}, nil
}
