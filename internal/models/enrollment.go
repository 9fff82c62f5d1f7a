package models

// UngradedMark is how an unset grade is rendered to callers.
const UngradedMark = "--"

// Enrollment joins a student to a class offering.
type Enrollment struct {
	StudentID string  `db:"student_id" json:"student_id"`
	ClassID   string  `db:"class_id" json:"class_id"`
	Grade     *string `db:"grade" json:"grade"`
}

// Graded reports whether a letter grade has been assigned.
func (e Enrollment) Graded() bool {
	return e.Grade != nil && *e.Grade != "" && *e.Grade != UngradedMark
}
