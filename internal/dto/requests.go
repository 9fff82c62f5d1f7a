package dto

import (
	"time"

	"github.com/noah-isme/lms-api/internal/models"
)

// ClassRef identifies a class offering in request payloads.
type ClassRef struct {
	Subject string `json:"subject" validate:"required,max=4"`
	Number  int    `json:"number" validate:"gte=0"`
	Season  string `json:"season" validate:"required,season"`
	Year    int    `json:"year" validate:"required,min=1900,max=9999"`
}

// Key converts the reference to the domain natural key.
func (r ClassRef) Key() models.ClassKey {
	return models.ClassKey{Subject: r.Subject, Number: r.Number, Season: r.Season, Year: r.Year}
}

// CreateCourseRequest creates a course in a department.
type CreateCourseRequest struct {
	Subject string `json:"subject" validate:"required,max=4"`
	Number  int    `json:"number" validate:"gte=0"`
	Name    string `json:"name" validate:"required,max=100"`
}

// CreateClassOfferingRequest schedules a course for a semester.
type CreateClassOfferingRequest struct {
	Subject      string           `json:"subject" validate:"required,max=4"`
	Number       int              `json:"number" validate:"gte=0"`
	Season       string           `json:"season" validate:"required,season"`
	Year         int              `json:"year" validate:"required,min=1900,max=9999"`
	Start        models.ClockTime `json:"start"`
	End          models.ClockTime `json:"end"`
	Location     string           `json:"location" validate:"required,max=100"`
	InstructorID string           `json:"instructor" validate:"required,len=8"`
}

// EnrollRequest enrolls a student in a class offering.
type EnrollRequest struct {
	ClassRef
	StudentID string `json:"uid" validate:"required,len=8"`
}

// CreateCategoryRequest adds an assignment category to a class.
type CreateCategoryRequest struct {
	ClassRef
	Name   string `json:"category" validate:"required,max=100"`
	Weight int    `json:"catweight" validate:"gte=0"`
}

// CreateAssignmentRequest adds an assignment to a category.
type CreateAssignmentRequest struct {
	ClassRef
	Category string    `json:"category" validate:"required,max=100"`
	Name     string    `json:"asgname" validate:"required,max=100"`
	Points   int       `json:"asgpoints" validate:"gte=0"`
	Due      time.Time `json:"asgdue" validate:"required"`
	Contents string    `json:"asgcontents" validate:"max=8192"`
}

// SubmitAssignmentRequest submits or resubmits text for an assignment.
type SubmitAssignmentRequest struct {
	ClassRef
	Category   string `json:"category" validate:"required"`
	Assignment string `json:"asgname" validate:"required"`
	StudentID  string `json:"uid" validate:"required,len=8"`
	Contents   string `json:"contents" validate:"max=8192"`
}

// GradeSubmissionRequest scores one student's submission.
type GradeSubmissionRequest struct {
	ClassRef
	Category   string `json:"category" validate:"required"`
	Assignment string `json:"asgname" validate:"required"`
	StudentID  string `json:"uid" validate:"required,len=8"`
	Score      int    `json:"score" validate:"gte=0"`
}
