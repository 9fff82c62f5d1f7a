package models

// ClassOffering is one scheduled instance of a course in a semester.
type ClassOffering struct {
	ID           string    `db:"id" json:"id"`
	CourseID     string    `db:"course_id" json:"course_id"`
	Semester     Semester  `db:"semester" json:"semester"`
	Start        ClockTime `db:"start_time" json:"start"`
	End          ClockTime `db:"end_time" json:"end"`
	Location     string    `db:"location" json:"location"`
	InstructorID string    `db:"instructor_id" json:"instructor_id"`
}

// Overlaps reports whether both offerings share a room with intersecting closed intervals.
func (c ClassOffering) Overlaps(other ClassOffering) bool {
	if c.Semester != other.Semester || c.Location != other.Location {
		return false
	}
	return !other.End.Before(c.Start) && !c.End.Before(other.Start)
}

// ClassKey is the natural key callers use to address a class offering.
type ClassKey struct {
	Subject string
	Number  int
	Season  string
	Year    int
}

// Semester returns the semester component of the key.
func (k ClassKey) Semester() Semester {
	return Semester{Season: k.Season, Year: k.Year}
}

// CategoryKey addresses an assignment category inside a class offering.
type CategoryKey struct {
	ClassKey
	Category string
}

// AssignmentKey addresses an assignment inside a category.
type AssignmentKey struct {
	CategoryKey
	Assignment string
}
