package models

// Course is a catalog entry unique by (subject, number).
type Course struct {
	ID      string `db:"id" json:"id"`
	Subject string `db:"subject" json:"subject"`
	Number  int    `db:"number" json:"number"`
	Name    string `db:"name" json:"name"`
}
