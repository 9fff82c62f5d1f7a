package models

import "time"

// AssignmentCategory is a weighted grouping of assignments inside one class offering.
type AssignmentCategory struct {
	ID      string `db:"id" json:"id"`
	ClassID string `db:"class_id" json:"class_id"`
	Name    string `db:"name" json:"name"`
	Weight  int    `db:"weight" json:"weight"`
}

// Assignment belongs to exactly one category.
type Assignment struct {
	ID         string    `db:"id" json:"id"`
	CategoryID string    `db:"category_id" json:"category_id"`
	Name       string    `db:"name" json:"name"`
	MaxPoints  int       `db:"max_points" json:"max_points"`
	DueAt      time.Time `db:"due_at" json:"due_at"`
	Contents   string    `db:"contents" json:"contents"`
}
