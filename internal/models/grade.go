package models

// ScoreSheetRow is one (category, assignment) pair of a class with a student's score.
// Categories without assignments yield a single row with a nil AssignmentID.
type ScoreSheetRow struct {
	CategoryID   string  `db:"category_id"`
	CategoryName string  `db:"category_name"`
	Weight       int     `db:"weight"`
	AssignmentID *string `db:"assignment_id"`
	MaxPoints    *int    `db:"max_points"`
	Score        *int    `db:"score"`
}
