package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/lms-api/internal/dto"
	"github.com/noah-isme/lms-api/internal/models"
	"github.com/noah-isme/lms-api/internal/service"
	"github.com/noah-isme/lms-api/pkg/response"
)

type classReader interface {
	Roster(ctx context.Context, key models.ClassKey) ([]dto.RosterItem, error)
	ListAssignmentCategories(ctx context.Context, key models.ClassKey) ([]dto.CategoryItem, error)
	ListAssignments(ctx context.Context, key models.ClassKey, category string) ([]dto.AssignmentItem, error)
	ListSubmissions(ctx context.Context, key models.AssignmentKey) ([]dto.SubmissionItem, error)
	StudentAssignments(ctx context.Context, key models.ClassKey, uid string) ([]dto.StudentAssignmentItem, error)
}

type courseworkWriter interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.Result, error)
	CreateAssignment(ctx context.Context, req dto.CreateAssignmentRequest) (*dto.Result, error)
	Submit(ctx context.Context, req dto.SubmitAssignmentRequest) (*dto.Result, error)
	GradeSubmission(ctx context.Context, req dto.GradeSubmissionRequest) (*dto.Result, error)
}

type enroller interface {
	Enroll(ctx context.Context, req dto.EnrollRequest) (*dto.Result, error)
}

type classGrader interface {
	ClassGrade(ctx context.Context, key models.ClassKey, studentID string) (*dto.ClassGradeResult, error)
}

type rosterExporter interface {
	Roster(ctx context.Context, key models.ClassKey, format string) (*service.ExportFile, error)
}

// ClassHandler serves every endpoint scoped to one class offering.
type ClassHandler struct {
	reads       classReader
	coursework  courseworkWriter
	enrollments enroller
	grades      classGrader
	exports     rosterExporter
}

// NewClassHandler constructs the handler.
func NewClassHandler(reads classReader, coursework courseworkWriter, enrollments enroller, grades classGrader, exports rosterExporter) *ClassHandler {
	return &ClassHandler{reads: reads, coursework: coursework, enrollments: enrollments, grades: grades, exports: exports}
}

// Roster godoc
// @Summary Students enrolled in a class
// @Tags Professor
// @Produce json
// @Security BearerAuth
// @Param subject path string true "Department subject code"
// @Param number path int true "Course number"
// @Param season path string true "Spring, Summer or Fall"
// @Param year path int true "Semester year"
// @Success 200 {object} response.Envelope
// @Router /classes/{subject}/{number}/{season}/{year}/roster [get]
func (h *ClassHandler) Roster(c *gin.Context) {
	ref, err := classRefParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.reads.Roster(c.Request.Context(), ref.Key())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// ExportRoster godoc
// @Summary Download the roster with grades
// @Tags Professor
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param subject path string true "Department subject code"
// @Param number path int true "Course number"
// @Param season path string true "Spring, Summer or Fall"
// @Param year path int true "Semester year"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /classes/{subject}/{number}/{season}/{year}/roster/export [get]
func (h *ClassHandler) ExportRoster(c *gin.Context) {
	ref, err := classRefParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exports.Roster(c.Request.Context(), ref.Key(), c.DefaultQuery("format", service.ExportFormatCSV))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, file.Filename, file.ContentType, file.Payload)
}

// Categories godoc
// @Summary Assignment categories of a class
// @Tags Professor
// @Produce json
// @Security BearerAuth
// @Param subject path string true "Department subject code"
// @Param number path int true "Course number"
// @Param season path string true "Spring, Summer or Fall"
// @Param year path int true "Semester year"
// @Success 200 {object} response.Envelope
// @Router /classes/{subject}/{number}/{season}/{year}/categories [get]
func (h *ClassHandler) Categories(c *gin.Context) {
	ref, err := classRefParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.reads.ListAssignmentCategories(c.Request.Context(), ref.Key())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// CreateCategory godoc
// @Summary Add an assignment category
// @Tags Professor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subject path string true "Department subject code"
// @Param number path int true "Course number"
// @Param season path string true "Spring, Summer or Fall"
// @Param year path int true "Semester year"
// @Param payload body dto.CreateCategoryRequest true "Category payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /classes/{subject}/{number}/{season}/{year}/categories [post]
func (h *ClassHandler) CreateCategory(c *gin.Context) {
	ref, err := classRefParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err, "invalid category payload"))
		return
	}
	req.ClassRef = ref
	result, err := h.coursework.CreateCategory(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Assignments godoc
// @Summary Assignments of a class with submission counts
// @Tags Professor
// @Produce json
// @Security BearerAuth
// @Param subject path string true "Department subject code"
// @Param number path int true "Course number"
// @Param season path string true "Spring, Summer or Fall"
// @Param year path int true "Semester year"
// @Param category query string false "Restrict to one category"
// @Success 200 {object} response.Envelope
// @Router /classes/{subject}/{number}/{season}/{year}/assignments [get]
func (h *ClassHandler) Assignments(c *gin.Context) {
	ref, err := classRefParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.reads.ListAssignments(c.Request.Context(), ref.Key(), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// CreateAssignment godoc
// @Summary Add an assignment to a category
// @Tags Professor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subject path string true "Department subject code"
// @Param number path int true "Course number"
// @Param season path string true "Spring, Summer or Fall"
// @Param year path int true "Semester year"
// @Param payload body dto.CreateAssignmentRequest true "Assignment payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /classes/{subject}/{number}/{season}/{year}/assignments [post]
func (h *ClassHandler) CreateAssignment(c *gin.Context) {
	ref, err := classRefParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err, "invalid assignment payload"))
		return
	}
	req.ClassRef = ref
	result, err := h.coursework.CreateAssignment(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Submissions godoc
// @Summary Submissions to one assignment
// @Tags Professor
// @Produce json
// @Security BearerAuth
// @Param subject path string true "Department subject code"
// @Param number path int true "Course number"
// @Param season path string true "Spring, Summer or Fall"
// @Param year path int true "Semester year"
// @Param category path string true "Category name"
// @Param assignment path string true "Assignment name"
// @Success 200 {object} response.Envelope
// @Router /classes/{subject}/{number}/{season}/{year}/categories/{category}/assignments/{assignment}/submissions [get]
func (h *ClassHandler) Submissions(c *gin.Context) {
	key, err := assignmentKeyParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.reads.ListSubmissions(c.Request.Context(), key)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Submit godoc
// @Summary Submit or resubmit text for an assignment
// @Description Resubmission replaces the text and keeps any score already given.
// @Tags Student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subject path string true "Department subject code"
// @Param number path int true "Course number"
// @Param season path string true "Spring, Summer or Fall"
// @Param year path int true "Semester year"
// @Param category path string true "Category name"
// @Param assignment path string true "Assignment name"
// @Param payload body dto.SubmitAssignmentRequest true "Only contents is read from the body"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /classes/{subject}/{number}/{season}/{year}/categories/{category}/assignments/{assignment}/submissions [post]
func (h *ClassHandler) Submit(c *gin.Context) {
	key, err := assignmentKeyParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.SubmitAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err, "invalid submission payload"))
		return
	}
	req.ClassRef = classRefOf(key.ClassKey)
	req.Category = key.Category
	req.Assignment = key.Assignment
	if claims := claimsFromContext(c); claims != nil {
		req.StudentID = claims.UserID
	}
	result, err := h.coursework.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// GradeSubmission godoc
// @Summary Score a student's submission
// @Tags Professor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subject path string true "Department subject code"
// @Param number path int true "Course number"
// @Param season path string true "Spring, Summer or Fall"
// @Param year path int true "Semester year"
// @Param category path string true "Category name"
// @Param assignment path string true "Assignment name"
// @Param uid path string true "Student id"
// @Param payload body dto.GradeSubmissionRequest true "Only score is read from the body"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /classes/{subject}/{number}/{season}/{year}/categories/{category}/assignments/{assignment}/submissions/{uid}/score [put]
func (h *ClassHandler) GradeSubmission(c *gin.Context) {
	key, err := assignmentKeyParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.GradeSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err, "invalid grade payload"))
		return
	}
	req.ClassRef = classRefOf(key.ClassKey)
	req.Category = key.Category
	req.Assignment = key.Assignment
	req.StudentID = c.Param("uid")
	result, err := h.coursework.GradeSubmission(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Enroll godoc
// @Summary Enroll in a class
// @Description Students always enroll themselves; administrators name the student in the body.
// @Tags Student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subject path string true "Department subject code"
// @Param number path int true "Course number"
// @Param season path string true "Spring, Summer or Fall"
// @Param year path int true "Semester year"
// @Param payload body dto.EnrollRequest false "Only uid is read from the body"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /classes/{subject}/{number}/{season}/{year}/enrollments [post]
func (h *ClassHandler) Enroll(c *gin.Context) {
	ref, err := classRefParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.EnrollRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, invalidPayload(err, "invalid enrollment payload"))
			return
		}
	}
	req.ClassRef = ref
	if claims := claimsFromContext(c); claims != nil && claims.Role == models.RoleStudent {
		req.StudentID = claims.UserID
	}
	result, err := h.enrollments.Enroll(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// StudentAssignments godoc
// @Summary Every assignment of a class with one student's score
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param subject path string true "Department subject code"
// @Param number path int true "Course number"
// @Param season path string true "Spring, Summer or Fall"
// @Param year path int true "Semester year"
// @Param uid path string true "Student id"
// @Success 200 {object} response.Envelope
// @Router /classes/{subject}/{number}/{season}/{year}/students/{uid}/assignments [get]
func (h *ClassHandler) StudentAssignments(c *gin.Context) {
	ref, err := classRefParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.reads.StudentAssignments(c.Request.Context(), ref.Key(), c.Param("uid"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// StudentGrade godoc
// @Summary Weighted class grade of one student
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param subject path string true "Department subject code"
// @Param number path int true "Course number"
// @Param season path string true "Spring, Summer or Fall"
// @Param year path int true "Semester year"
// @Param uid path string true "Student id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /classes/{subject}/{number}/{season}/{year}/students/{uid}/grade [get]
func (h *ClassHandler) StudentGrade(c *gin.Context) {
	ref, err := classRefParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	grade, err := h.grades.ClassGrade(c.Request.Context(), ref.Key(), c.Param("uid"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, grade)
}

func classRefOf(key models.ClassKey) dto.ClassRef {
	return dto.ClassRef{Subject: key.Subject, Number: key.Number, Season: key.Season, Year: key.Year}
}
