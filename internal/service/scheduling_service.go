package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/lms-api/internal/dto"
	"github.com/noah-isme/lms-api/internal/models"
	appErrors "github.com/noah-isme/lms-api/pkg/errors"
	"github.com/noah-isme/lms-api/pkg/validation"
)

type departmentFinder interface {
	FindBySubject(ctx context.Context, subject string) (*models.Department, error)
}

type courseWriter interface {
	Exists(ctx context.Context, subject string, number int) (bool, error)
	FindByNumber(ctx context.Context, subject string, number int) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
}

type classOfferingWriter interface {
	ExistsForCourse(ctx context.Context, courseID string, semester models.Semester) (bool, error)
	ListInRoom(ctx context.Context, semester models.Semester, location string) ([]models.ClassOffering, error)
	Create(ctx context.Context, offering *models.ClassOffering) error
}

type professorChecker interface {
	ProfessorExists(ctx context.Context, uid string) (bool, error)
}

// SchedulingService creates courses and schedules class offerings.
type SchedulingService struct {
	tx          transactor
	departments departmentFinder
	courses     courseWriter
	classes     classOfferingWriter
	professors  professorChecker
	cache       *CacheService
	validator   *validation.Validator
	metrics     *MetricsService
	logger      *zap.Logger
}

// NewSchedulingService constructs SchedulingService.
func NewSchedulingService(tx transactor, departments departmentFinder, courses courseWriter, classes classOfferingWriter, professors professorChecker, cache *CacheService, validate *validation.Validator, metrics *MetricsService, logger *zap.Logger) *SchedulingService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SchedulingService{
		tx:          tx,
		departments: departments,
		courses:     courses,
		classes:     classes,
		professors:  professors,
		cache:       cache,
		validator:   validate,
		metrics:     metrics,
		logger:      logger,
	}
}

// CreateCourse adds a course to an existing department.
func (s *SchedulingService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*dto.Result, error) {
	if err := s.validator.Struct(req, "invalid course payload"); err != nil {
		return nil, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.departments.FindBySubject(ctx, req.Subject); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return appErrors.Clone(appErrors.ErrNotFound, "department not found")
			}
			return err
		}
		exists, err := s.courses.Exists(ctx, req.Subject, req.Number)
		if err != nil {
			return err
		}
		if exists {
			return errRejected
		}
		return s.courses.Create(ctx, &models.Course{Subject: req.Subject, Number: req.Number, Name: req.Name})
	})

	result, err := writeOutcome("create course", err, s.metrics, s.logger)
	if result != nil && result.Success {
		s.cache.Invalidate(ctx, catalogKeyPattern)
	}
	return result, err
}

// CreateClassOffering schedules a course for a semester in a room. It is rejected when the
// course already has an offering that semester or the room is booked for an intersecting interval.
func (s *SchedulingService) CreateClassOffering(ctx context.Context, req dto.CreateClassOfferingRequest) (*dto.Result, error) {
	if err := s.validator.Struct(req, "invalid class offering payload"); err != nil {
		return nil, err
	}
	if !req.Start.Before(req.End) {
		err := appErrors.Clone(appErrors.ErrValidation, "invalid class offering payload")
		err.Fields = map[string]string{"end": "end must be after start"}
		return nil, err
	}
	semester := models.Semester{Season: req.Season, Year: req.Year}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		course, err := s.courses.FindByNumber(ctx, req.Subject, req.Number)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return appErrors.Clone(appErrors.ErrNotFound, "course not found")
			}
			return err
		}
		ok, err := s.professors.ProfessorExists(ctx, req.InstructorID)
		if err != nil {
			return err
		}
		if !ok {
			return appErrors.Clone(appErrors.ErrNotFound, "instructor not found")
		}

		taken, err := s.classes.ExistsForCourse(ctx, course.ID, semester)
		if err != nil {
			return err
		}
		if taken {
			return errRejected
		}

		candidate := models.ClassOffering{
			CourseID:     course.ID,
			Semester:     semester,
			Start:        req.Start,
			End:          req.End,
			Location:     req.Location,
			InstructorID: req.InstructorID,
		}
		booked, err := s.classes.ListInRoom(ctx, semester, req.Location)
		if err != nil {
			return err
		}
		for _, existing := range booked {
			if existing.Overlaps(candidate) {
				return errRejected
			}
		}
		return s.classes.Create(ctx, &candidate)
	})

	result, err := writeOutcome("create class offering", err, s.metrics, s.logger)
	if result != nil && result.Success {
		s.cache.Invalidate(ctx, catalogKeyPattern)
	}
	return result, err
}
