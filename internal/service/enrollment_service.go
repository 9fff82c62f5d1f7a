package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/lms-api/internal/dto"
	"github.com/noah-isme/lms-api/internal/models"
	"github.com/noah-isme/lms-api/pkg/validation"
)

type enrollmentRepository interface {
	Exists(ctx context.Context, studentID, classID string) (bool, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
}

// EnrollmentService enrolls students in class offerings.
type EnrollmentService struct {
	tx        transactor
	repo      enrollmentRepository
	classes   classOfferingFinder
	students  studentChecker
	validator *validation.Validator
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewEnrollmentService constructs EnrollmentService.
func NewEnrollmentService(tx transactor, repo enrollmentRepository, classes classOfferingFinder, students studentChecker, validate *validation.Validator, metrics *MetricsService, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{tx: tx, repo: repo, classes: classes, students: students, validator: validate, metrics: metrics, logger: logger}
}

// Enroll registers a student in a class offering with no grade. A repeated enrollment is rejected.
func (s *EnrollmentService) Enroll(ctx context.Context, req dto.EnrollRequest) (*dto.Result, error) {
	if err := s.validator.Struct(req, "invalid enrollment payload"); err != nil {
		return nil, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		offering, err := resolver{classes: s.classes}.class(ctx, req.Key())
		if err != nil {
			return err
		}
		if err := requireStudent(ctx, s.students, req.StudentID); err != nil {
			return err
		}
		exists, err := s.repo.Exists(ctx, req.StudentID, offering.ID)
		if err != nil {
			return err
		}
		if exists {
			return errRejected
		}
		return s.repo.Create(ctx, &models.Enrollment{StudentID: req.StudentID, ClassID: offering.ID})
	})

	return writeOutcome("enroll", err, s.metrics, s.logger)
}
