package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/lms-api/internal/dto"
	"github.com/noah-isme/lms-api/pkg/response"
)

type scheduleReader interface {
	ProfessorClasses(ctx context.Context, uid string) ([]dto.ProfessorClassItem, error)
	StudentClasses(ctx context.Context, uid string) ([]dto.StudentClassItem, error)
}

type gpaCalculator interface {
	GPA(ctx context.Context, studentID string) (*dto.GPAResult, error)
}

// UserHandler serves the per-user class listings and GPA.
type UserHandler struct {
	schedules scheduleReader
	gpa       gpaCalculator
}

// NewUserHandler constructs the handler.
func NewUserHandler(schedules scheduleReader, gpa gpaCalculator) *UserHandler {
	return &UserHandler{schedules: schedules, gpa: gpa}
}

// ProfessorClasses godoc
// @Summary Classes taught by a professor
// @Tags Professor
// @Produce json
// @Security BearerAuth
// @Param uid path string true "Professor id"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /professors/{uid}/classes [get]
func (h *UserHandler) ProfessorClasses(c *gin.Context) {
	items, err := h.schedules.ProfessorClasses(c.Request.Context(), c.Param("uid"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// StudentClasses godoc
// @Summary Classes a student is enrolled in
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param uid path string true "Student id"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /students/{uid}/classes [get]
func (h *UserHandler) StudentClasses(c *gin.Context) {
	items, err := h.schedules.StudentClasses(c.Request.Context(), c.Param("uid"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// GPA godoc
// @Summary Grade point average over graded enrollments
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param uid path string true "Student id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{uid}/gpa [get]
func (h *UserHandler) GPA(c *gin.Context) {
	result, err := h.gpa.GPA(c.Request.Context(), c.Param("uid"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
