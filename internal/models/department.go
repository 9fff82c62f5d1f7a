package models

// Department owns courses and is keyed by its subject abbreviation (e.g. "CS").
type Department struct {
	Subject string `db:"subject" json:"subject"`
	Name    string `db:"name" json:"name"`
}
