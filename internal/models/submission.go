package models

import "time"

// Submission is keyed by (assignment, student). Score stays nil until graded.
type Submission struct {
	AssignmentID string    `db:"assignment_id" json:"assignment_id"`
	StudentID    string    `db:"student_id" json:"student_id"`
	SubmittedAt  time.Time `db:"submitted_at" json:"submitted_at"`
	Score        *int      `db:"score" json:"score"`
	Contents     string    `db:"contents" json:"contents"`
}

// Graded reports whether an instructor has scored the submission.
func (s Submission) Graded() bool {
	return s.Score != nil
}
