package handler

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/lms-api/internal/dto"
	"github.com/noah-isme/lms-api/internal/models"
	"github.com/noah-isme/lms-api/pkg/response"
)

type catalogReader interface {
	ListDepartments(ctx context.Context) ([]dto.DepartmentItem, error)
	Catalog(ctx context.Context) ([]dto.CatalogDepartment, error)
	ListCourses(ctx context.Context, subject string) ([]dto.CourseItem, error)
	ListProfessors(ctx context.Context, subject string) ([]dto.ProfessorItem, error)
	ListClassOfferings(ctx context.Context, subject string, number int) ([]dto.ClassOfferingItem, error)
	AssignmentContents(ctx context.Context, key models.AssignmentKey) (string, error)
	SubmissionText(ctx context.Context, key models.AssignmentKey, studentID string) (string, error)
	User(ctx context.Context, uid string) (*dto.UserProfile, error)
}

// CatalogHandler serves the read-only views shared by every role.
type CatalogHandler struct {
	catalog catalogReader
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(catalog catalogReader) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Departments godoc
// @Summary List departments
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /departments [get]
func (h *CatalogHandler) Departments(c *gin.Context) {
	items, err := h.catalog.ListDepartments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Catalog godoc
// @Summary Department and course tree
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /catalog [get]
func (h *CatalogHandler) Catalog(c *gin.Context) {
	tree, err := h.catalog.Catalog(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tree)
}

// Courses godoc
// @Summary List courses of a department
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param subject path string true "Department subject code"
// @Success 200 {object} response.Envelope
// @Router /departments/{subject}/courses [get]
func (h *CatalogHandler) Courses(c *gin.Context) {
	items, err := h.catalog.ListCourses(c.Request.Context(), strings.ToUpper(c.Param("subject")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Professors godoc
// @Summary List professors working in a department
// @Tags Administration
// @Produce json
// @Security BearerAuth
// @Param subject path string true "Department subject code"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /departments/{subject}/professors [get]
func (h *CatalogHandler) Professors(c *gin.Context) {
	items, err := h.catalog.ListProfessors(c.Request.Context(), strings.ToUpper(c.Param("subject")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// ClassOfferings godoc
// @Summary List offerings of a course
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param subject path string true "Department subject code"
// @Param number path int true "Course number"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /courses/{subject}/{number}/classes [get]
func (h *CatalogHandler) ClassOfferings(c *gin.Context) {
	number, err := intParam(c, "number")
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.catalog.ListClassOfferings(c.Request.Context(), strings.ToUpper(c.Param("subject")), number)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// User godoc
// @Summary Role-specific user profile
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param uid path string true "User id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{uid} [get]
func (h *CatalogHandler) User(c *gin.Context) {
	profile, err := h.catalog.User(c.Request.Context(), c.Param("uid"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, profile)
}

// AssignmentContents godoc
// @Summary Assignment instructions
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param subject path string true "Department subject code"
// @Param number path int true "Course number"
// @Param season path string true "Spring, Summer or Fall"
// @Param year path int true "Semester year"
// @Param category path string true "Category name"
// @Param assignment path string true "Assignment name"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /classes/{subject}/{number}/{season}/{year}/categories/{category}/assignments/{assignment} [get]
func (h *CatalogHandler) AssignmentContents(c *gin.Context) {
	key, err := assignmentKeyParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	contents, err := h.catalog.AssignmentContents(c.Request.Context(), key)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"contents": contents})
}

// SubmissionText godoc
// @Summary A student's submitted text
// @Description Empty contents mean the student has not submitted.
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param subject path string true "Department subject code"
// @Param number path int true "Course number"
// @Param season path string true "Spring, Summer or Fall"
// @Param year path int true "Semester year"
// @Param category path string true "Category name"
// @Param assignment path string true "Assignment name"
// @Param uid path string true "Student id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /classes/{subject}/{number}/{season}/{year}/categories/{category}/assignments/{assignment}/submissions/{uid} [get]
func (h *CatalogHandler) SubmissionText(c *gin.Context) {
	key, err := assignmentKeyParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	contents, err := h.catalog.SubmissionText(c.Request.Context(), key, c.Param("uid"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"contents": contents})
}
