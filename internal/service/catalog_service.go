package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/lms-api/internal/dto"
	"github.com/noah-isme/lms-api/internal/models"
	appErrors "github.com/noah-isme/lms-api/pkg/errors"
)

type departmentReader interface {
	List(ctx context.Context) ([]dto.DepartmentItem, error)
	Catalog(ctx context.Context) ([]dto.CatalogRow, error)
}

type courseReader interface {
	ListBySubject(ctx context.Context, subject string) ([]dto.CourseItem, error)
	FindByNumber(ctx context.Context, subject string, number int) (*models.Course, error)
}

type classOfferingReader interface {
	classOfferingFinder
	ListForCourse(ctx context.Context, courseID string) ([]dto.ClassOfferingItem, error)
	ListByInstructor(ctx context.Context, instructorID string) ([]dto.ProfessorClassItem, error)
}

type categoryReader interface {
	categoryFinder
	ListForClass(ctx context.Context, classID string) ([]dto.CategoryItem, error)
}

type assignmentReader interface {
	assignmentFinder
	ListForClass(ctx context.Context, classID, category string) ([]dto.AssignmentItem, error)
	ListForStudent(ctx context.Context, classID, studentID string) ([]dto.StudentAssignmentItem, error)
}

type submissionReader interface {
	Find(ctx context.Context, assignmentID, studentID string) (*models.Submission, error)
	ListForAssignment(ctx context.Context, assignmentID string) ([]dto.SubmissionItem, error)
}

type rosterReader interface {
	Roster(ctx context.Context, classID string) ([]dto.RosterItem, error)
	ListForStudent(ctx context.Context, studentID string) ([]dto.StudentClassItem, error)
}

type userReader interface {
	FindAccount(ctx context.Context, uid string) (*models.UserAccount, error)
	ListProfessors(ctx context.Context, subject string) ([]dto.ProfessorItem, error)
}

// CatalogRepositories groups the read models the catalog draws from.
type CatalogRepositories struct {
	Departments departmentReader
	Courses     courseReader
	Classes     classOfferingReader
	Categories  categoryReader
	Assignments assignmentReader
	Submissions submissionReader
	Enrollments rosterReader
	Users       userReader
}

// CatalogService serves read-only projections of the catalog, classes and submissions.
type CatalogService struct {
	repos    CatalogRepositories
	resolver resolver
	cache    *CacheService
	logger   *zap.Logger
}

// NewCatalogService constructs CatalogService. A nil cache disables caching.
func NewCatalogService(repos CatalogRepositories, cache *CacheService, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		repos:    repos,
		resolver: resolver{classes: repos.Classes, categories: repos.Categories, assignments: repos.Assignments},
		cache:    cache,
		logger:   logger,
	}
}

// ListDepartments returns every department ordered by subject.
func (s *CatalogService) ListDepartments(ctx context.Context) ([]dto.DepartmentItem, error) {
	var cached []dto.DepartmentItem
	if s.cache.Get(ctx, catalogDepartments, &cached) {
		return cached, nil
	}
	items, err := s.repos.Departments.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list departments")
	}
	items = nonNil(items)
	s.cache.Set(ctx, catalogDepartments, items)
	return items, nil
}

// Catalog returns departments with their courses nested.
func (s *CatalogService) Catalog(ctx context.Context) ([]dto.CatalogDepartment, error) {
	var cached []dto.CatalogDepartment
	if s.cache.Get(ctx, catalogTree, &cached) {
		return cached, nil
	}
	rows, err := s.repos.Departments.Catalog(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load catalog")
	}

	tree := make([]dto.CatalogDepartment, 0)
	for _, row := range rows {
		if n := len(tree); n == 0 || tree[n-1].Subject != row.Subject {
			tree = append(tree, dto.CatalogDepartment{Subject: row.Subject, Name: row.Department, Courses: []dto.CatalogCourse{}})
		}
		if row.CourseNumber == nil || row.CourseName == nil {
			continue
		}
		last := &tree[len(tree)-1]
		last.Courses = append(last.Courses, dto.CatalogCourse{Number: *row.CourseNumber, Name: *row.CourseName})
	}
	s.cache.Set(ctx, catalogTree, tree)
	return tree, nil
}

// ListCourses returns the courses of a department ordered by number.
func (s *CatalogService) ListCourses(ctx context.Context, subject string) ([]dto.CourseItem, error) {
	key := catalogKeyPrefix + "courses:" + subject
	var cached []dto.CourseItem
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}
	items, err := s.repos.Courses.ListBySubject(ctx, subject)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	items = nonNil(items)
	s.cache.Set(ctx, key, items)
	return items, nil
}

// ListProfessors returns the professors working in a department.
func (s *CatalogService) ListProfessors(ctx context.Context, subject string) ([]dto.ProfessorItem, error) {
	items, err := s.repos.Users.ListProfessors(ctx, subject)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list professors")
	}
	return nonNil(items), nil
}

// ListClassOfferings returns every offering of a course. Unknown courses yield an empty list.
func (s *CatalogService) ListClassOfferings(ctx context.Context, subject string, number int) ([]dto.ClassOfferingItem, error) {
	key := fmt.Sprintf("%sclasses:%s:%d", catalogKeyPrefix, subject, number)
	var cached []dto.ClassOfferingItem
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}
	course, err := s.repos.Courses.FindByNumber(ctx, subject, number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []dto.ClassOfferingItem{}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	items, err := s.repos.Classes.ListForCourse(ctx, course.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list class offerings")
	}
	items = nonNil(items)
	s.cache.Set(ctx, key, items)
	return items, nil
}

// ListAssignmentCategories returns the categories of a class ordered by name.
func (s *CatalogService) ListAssignmentCategories(ctx context.Context, key models.ClassKey) ([]dto.CategoryItem, error) {
	offering, err := s.classOrNil(ctx, key)
	if err != nil || offering == nil {
		return []dto.CategoryItem{}, err
	}
	items, err := s.repos.Categories.ListForClass(ctx, offering.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assignment categories")
	}
	return nonNil(items), nil
}

// ListAssignments returns assignments of one category, or of all categories when category is empty,
// with their submission counts.
func (s *CatalogService) ListAssignments(ctx context.Context, key models.ClassKey, category string) ([]dto.AssignmentItem, error) {
	offering, err := s.classOrNil(ctx, key)
	if err != nil || offering == nil {
		return []dto.AssignmentItem{}, err
	}
	items, err := s.repos.Assignments.ListForClass(ctx, offering.ID, category)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assignments")
	}
	return nonNil(items), nil
}

// AssignmentContents returns the body of an assignment.
func (s *CatalogService) AssignmentContents(ctx context.Context, key models.AssignmentKey) (string, error) {
	assignment, _, err := s.resolver.assignment(ctx, key)
	if err != nil {
		return "", err
	}
	return assignment.Contents, nil
}

// SubmissionText returns a student's submission contents, or "" when nothing was submitted.
func (s *CatalogService) SubmissionText(ctx context.Context, key models.AssignmentKey, studentID string) (string, error) {
	assignment, _, err := s.resolver.assignment(ctx, key)
	if err != nil {
		return "", err
	}
	submission, err := s.repos.Submissions.Find(ctx, assignment.ID, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load submission")
	}
	return submission.Contents, nil
}

// ListSubmissions returns the submissions to one assignment.
func (s *CatalogService) ListSubmissions(ctx context.Context, key models.AssignmentKey) ([]dto.SubmissionItem, error) {
	assignment, _, err := s.resolver.assignment(ctx, key)
	if err != nil {
		if appErrors.IsNotFound(err) {
			return []dto.SubmissionItem{}, nil
		}
		return nil, err
	}
	items, err := s.repos.Submissions.ListForAssignment(ctx, assignment.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list submissions")
	}
	return nonNil(items), nil
}

// Roster returns the students enrolled in a class with their grades.
func (s *CatalogService) Roster(ctx context.Context, key models.ClassKey) ([]dto.RosterItem, error) {
	offering, err := s.classOrNil(ctx, key)
	if err != nil || offering == nil {
		return []dto.RosterItem{}, err
	}
	items, err := s.repos.Enrollments.Roster(ctx, offering.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list roster")
	}
	return nonNil(items), nil
}

// ProfessorClasses returns the classes taught by a professor.
func (s *CatalogService) ProfessorClasses(ctx context.Context, uid string) ([]dto.ProfessorClassItem, error) {
	items, err := s.repos.Classes.ListByInstructor(ctx, uid)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list professor classes")
	}
	return nonNil(items), nil
}

// StudentClasses returns the classes a student is enrolled in.
func (s *CatalogService) StudentClasses(ctx context.Context, uid string) ([]dto.StudentClassItem, error) {
	items, err := s.repos.Enrollments.ListForStudent(ctx, uid)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list student classes")
	}
	return nonNil(items), nil
}

// StudentAssignments returns every assignment of a class with the student's score.
func (s *CatalogService) StudentAssignments(ctx context.Context, key models.ClassKey, uid string) ([]dto.StudentAssignmentItem, error) {
	offering, err := s.classOrNil(ctx, key)
	if err != nil || offering == nil {
		return []dto.StudentAssignmentItem{}, err
	}
	items, err := s.repos.Assignments.ListForStudent(ctx, offering.ID, uid)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list student assignments")
	}
	return nonNil(items), nil
}

// User returns the role-specific projection of uid.
func (s *CatalogService) User(ctx context.Context, uid string) (*dto.UserProfile, error) {
	account, err := s.repos.Users.FindAccount(ctx, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	profile := &dto.UserProfile{
		FirstName: account.FirstName,
		LastName:  account.LastName,
		UID:       account.UID,
		Role:      account.Role,
	}
	if account.Role != models.RoleAdministrator {
		profile.Department = account.DepartmentName
	}
	return profile, nil
}

// classOrNil resolves an offering for list reads, where a missing offering is an empty result.
func (s *CatalogService) classOrNil(ctx context.Context, key models.ClassKey) (*models.ClassOffering, error) {
	offering, err := s.resolver.class(ctx, key)
	if err != nil {
		if appErrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return offering, nil
}
