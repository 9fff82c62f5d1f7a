package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/lms-api/internal/dto"
	"github.com/noah-isme/lms-api/pkg/response"
)

type scheduler interface {
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*dto.Result, error)
	CreateClassOffering(ctx context.Context, req dto.CreateClassOfferingRequest) (*dto.Result, error)
}

// SchedulingHandler exposes the administrator write endpoints.
type SchedulingHandler struct {
	scheduling scheduler
}

// NewSchedulingHandler constructs the handler.
func NewSchedulingHandler(scheduling scheduler) *SchedulingHandler {
	return &SchedulingHandler{scheduling: scheduling}
}

// CreateCourse godoc
// @Summary Create a course
// @Description Responds success=false when the course number is taken in the department.
// @Tags Administration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateCourseRequest true "Course payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /courses [post]
func (h *SchedulingHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err, "invalid course payload"))
		return
	}
	result, err := h.scheduling.CreateCourse(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// CreateClassOffering godoc
// @Summary Schedule a class offering
// @Description Responds success=false when the course is already offered that semester or the room is taken.
// @Tags Administration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateClassOfferingRequest true "Class offering payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /classes [post]
func (h *SchedulingHandler) CreateClassOffering(c *gin.Context) {
	var req dto.CreateClassOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err, "invalid class offering payload"))
		return
	}
	req.Season = titleCase(req.Season)
	result, err := h.scheduling.CreateClassOffering(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
