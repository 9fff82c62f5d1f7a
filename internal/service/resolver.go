package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/lms-api/internal/dto"
	"github.com/noah-isme/lms-api/internal/models"
	"github.com/noah-isme/lms-api/internal/repository"
	appErrors "github.com/noah-isme/lms-api/pkg/errors"
)

// errRejected aborts a unit of work whose write violates a uniqueness or scheduling rule.
var errRejected = errors.New("write rejected")

type transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type classOfferingFinder interface {
	FindByKey(ctx context.Context, key models.ClassKey) (*models.ClassOffering, error)
}

type categoryFinder interface {
	FindByName(ctx context.Context, classID, name string) (*models.AssignmentCategory, error)
}

type assignmentFinder interface {
	FindByName(ctx context.Context, categoryID, name string) (*models.Assignment, error)
}

type studentChecker interface {
	StudentExists(ctx context.Context, uid string) (bool, error)
}

// resolver walks the natural key chain course, offering, category, assignment.
type resolver struct {
	classes     classOfferingFinder
	categories  categoryFinder
	assignments assignmentFinder
}

func (r resolver) class(ctx context.Context, key models.ClassKey) (*models.ClassOffering, error) {
	if err := key.Semester().Validate(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid semester")
	}
	offering, err := r.classes.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class offering not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class offering")
	}
	return offering, nil
}

func (r resolver) category(ctx context.Context, key models.CategoryKey) (*models.AssignmentCategory, error) {
	offering, err := r.class(ctx, key.ClassKey)
	if err != nil {
		return nil, err
	}
	category, err := r.categories.FindByName(ctx, offering.ID, key.Category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment category not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment category")
	}
	return category, nil
}

func (r resolver) assignment(ctx context.Context, key models.AssignmentKey) (*models.Assignment, *models.AssignmentCategory, error) {
	category, err := r.category(ctx, key.CategoryKey)
	if err != nil {
		return nil, nil, err
	}
	assignment, err := r.assignments.FindByName(ctx, category.ID, key.Assignment)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}
	return assignment, category, nil
}

func requireStudent(ctx context.Context, students studentChecker, uid string) error {
	ok, err := students.StudentExists(ctx, uid)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return nil
}

// writeOutcome folds the result of a unit of work into the caller-facing result.
// Conflicts become {success:false}; every other failure propagates.
func writeOutcome(operation string, err error, metrics *MetricsService, logger *zap.Logger) (*dto.Result, error) {
	switch {
	case err == nil:
		metrics.RecordWrite(operation, OutcomeSuccess)
		return dto.Succeeded(), nil
	case errors.Is(err, errRejected), errors.Is(err, repository.ErrDuplicate):
		metrics.RecordWrite(operation, OutcomeRejected)
		logger.Info("write rejected", zap.String("operation", operation), zap.Error(err))
		return dto.Rejected(), nil
	}
	metrics.RecordWrite(operation, OutcomeError)
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return nil, appErr
	}
	logger.Error("write failed", zap.String("operation", operation), zap.Error(err))
	return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to "+operation)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
