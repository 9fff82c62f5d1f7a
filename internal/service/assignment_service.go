package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/lms-api/internal/dto"
	"github.com/noah-isme/lms-api/internal/models"
	appErrors "github.com/noah-isme/lms-api/pkg/errors"
	"github.com/noah-isme/lms-api/pkg/validation"
)

type categoryWriter interface {
	categoryFinder
	Exists(ctx context.Context, classID, name string) (bool, error)
	Create(ctx context.Context, category *models.AssignmentCategory) error
}

type assignmentWriter interface {
	assignmentFinder
	Exists(ctx context.Context, categoryID, name string) (bool, error)
	Create(ctx context.Context, assignment *models.Assignment) error
}

type submissionWriter interface {
	Upsert(ctx context.Context, submission *models.Submission) (bool, error)
	SetScore(ctx context.Context, assignmentID, studentID string, score int) error
}

type enrollmentGrader interface {
	RecalculateEnrollmentGrade(ctx context.Context, classID, studentID string) (*dto.ClassGradeResult, error)
	RecalculateClassGrades(ctx context.Context, classID string) error
}

// AssignmentOptions tunes the assignment workflow.
type AssignmentOptions struct {
	AutoRecalculate bool
	Now             func() time.Time
}

// AssignmentService runs the category, assignment, submission and grading workflow.
type AssignmentService struct {
	tx          transactor
	resolver    resolver
	categories  categoryWriter
	assignments assignmentWriter
	submissions submissionWriter
	students    studentChecker
	grader      enrollmentGrader
	opts        AssignmentOptions
	validator   *validation.Validator
	metrics     *MetricsService
	logger      *zap.Logger
}

// NewAssignmentService constructs AssignmentService. grader may be nil when grades are not recalculated.
func NewAssignmentService(tx transactor, classes classOfferingFinder, categories categoryWriter, assignments assignmentWriter, submissions submissionWriter, students studentChecker, grader enrollmentGrader, opts AssignmentOptions, validate *validation.Validator, metrics *MetricsService, logger *zap.Logger) *AssignmentService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &AssignmentService{
		tx:          tx,
		resolver:    resolver{classes: classes, categories: categories, assignments: assignments},
		categories:  categories,
		assignments: assignments,
		submissions: submissions,
		students:    students,
		grader:      grader,
		opts:        opts,
		validator:   validate,
		metrics:     metrics,
		logger:      logger,
	}
}

// CreateCategory adds a weighted category to a class. Names are unique per class.
func (s *AssignmentService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.Result, error) {
	if err := s.validator.Struct(req, "invalid assignment category payload"); err != nil {
		return nil, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		offering, err := s.resolver.class(ctx, req.Key())
		if err != nil {
			return err
		}
		exists, err := s.categories.Exists(ctx, offering.ID, req.Name)
		if err != nil {
			return err
		}
		if exists {
			return errRejected
		}
		if err := s.categories.Create(ctx, &models.AssignmentCategory{ClassID: offering.ID, Name: req.Name, Weight: req.Weight}); err != nil {
			return err
		}
		return s.refreshClassGrades(ctx, offering.ID)
	})

	return writeOutcome("create assignment category", err, s.metrics, s.logger)
}

// CreateAssignment adds an assignment to a category. Names are unique per category.
func (s *AssignmentService) CreateAssignment(ctx context.Context, req dto.CreateAssignmentRequest) (*dto.Result, error) {
	if err := s.validator.Struct(req, "invalid assignment payload"); err != nil {
		return nil, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		category, err := s.resolver.category(ctx, models.CategoryKey{ClassKey: req.Key(), Category: req.Category})
		if err != nil {
			return err
		}
		exists, err := s.assignments.Exists(ctx, category.ID, req.Name)
		if err != nil {
			return err
		}
		if exists {
			return errRejected
		}
		if err := s.assignments.Create(ctx, &models.Assignment{
			CategoryID: category.ID,
			Name:       req.Name,
			MaxPoints:  req.Points,
			DueAt:      req.Due,
			Contents:   req.Contents,
		}); err != nil {
			return err
		}
		return s.refreshClassGrades(ctx, category.ClassID)
	})

	return writeOutcome("create assignment", err, s.metrics, s.logger)
}

// Submit stores a student's text for an assignment. Resubmitting replaces the contents and
// timestamp and keeps any score already given.
func (s *AssignmentService) Submit(ctx context.Context, req dto.SubmitAssignmentRequest) (*dto.Result, error) {
	if err := s.validator.Struct(req, "invalid submission payload"); err != nil {
		return nil, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		assignment, _, err := s.resolver.assignment(ctx, assignmentKey(req.ClassRef, req.Category, req.Assignment))
		if err != nil {
			return err
		}
		if err := requireStudent(ctx, s.students, req.StudentID); err != nil {
			return err
		}
		inserted, err := s.submissions.Upsert(ctx, &models.Submission{
			AssignmentID: assignment.ID,
			StudentID:    req.StudentID,
			SubmittedAt:  s.opts.Now().UTC(),
			Contents:     req.Contents,
		})
		if err != nil {
			return err
		}
		s.logger.Debug("submission stored",
			zap.String("assignment_id", assignment.ID),
			zap.String("student_id", req.StudentID),
			zap.Bool("resubmission", !inserted),
		)
		return nil
	})

	return writeOutcome("submit assignment", err, s.metrics, s.logger)
}

// GradeSubmission scores an existing submission. Scores must lie within [0, max points].
func (s *AssignmentService) GradeSubmission(ctx context.Context, req dto.GradeSubmissionRequest) (*dto.Result, error) {
	if err := s.validator.Struct(req, "invalid grade payload"); err != nil {
		return nil, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		assignment, category, err := s.resolver.assignment(ctx, assignmentKey(req.ClassRef, req.Category, req.Assignment))
		if err != nil {
			return err
		}
		if req.Score > assignment.MaxPoints {
			appErr := appErrors.Clone(appErrors.ErrValidation, "invalid grade payload")
			appErr.Fields = map[string]string{"score": "score must not exceed the assignment's max points"}
			return appErr
		}
		if err := s.submissions.SetScore(ctx, assignment.ID, req.StudentID, req.Score); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errRejected
			}
			return err
		}
		if !s.opts.AutoRecalculate || s.grader == nil {
			return nil
		}
		_, err = s.grader.RecalculateEnrollmentGrade(ctx, category.ClassID, req.StudentID)
		return err
	})

	return writeOutcome("grade submission", err, s.metrics, s.logger)
}

// refreshClassGrades keeps assigned grades in step with the class's gradable work.
func (s *AssignmentService) refreshClassGrades(ctx context.Context, classID string) error {
	if !s.opts.AutoRecalculate || s.grader == nil {
		return nil
	}
	return s.grader.RecalculateClassGrades(ctx, classID)
}

func assignmentKey(ref dto.ClassRef, category, assignment string) models.AssignmentKey {
	return models.AssignmentKey{
		CategoryKey: models.CategoryKey{ClassKey: ref.Key(), Category: category},
		Assignment:  assignment,
	}
}
