package dto

import (
	"time"

	"github.com/noah-isme/lms-api/internal/models"
)

// DepartmentItem is a department row in listings.
type DepartmentItem struct {
	Subject string `db:"subject" json:"subject"`
	Name    string `db:"name" json:"name"`
}

// CatalogCourse is a course nested in the catalog.
type CatalogCourse struct {
	Number int    `db:"number" json:"number"`
	Name   string `db:"name" json:"cname"`
}

// CatalogDepartment is one department with its courses.
type CatalogDepartment struct {
	Subject string          `json:"subject"`
	Name    string          `json:"dname"`
	Courses []CatalogCourse `json:"courses"`
}

// CatalogRow is the flat join used to assemble CatalogDepartment values.
type CatalogRow struct {
	Subject      string  `db:"subject"`
	Department   string  `db:"dname"`
	CourseNumber *int    `db:"number"`
	CourseName   *string `db:"cname"`
}

// CourseItem lists a course inside one department.
type CourseItem struct {
	Number int    `db:"number" json:"number"`
	Name   string `db:"name" json:"name"`
}

// ProfessorItem lists a professor of a department.
type ProfessorItem struct {
	LastName  string `db:"last_name" json:"lname"`
	FirstName string `db:"first_name" json:"fname"`
	UID       string `db:"uid" json:"uid"`
}

// ClassOfferingItem describes one offering of a course.
type ClassOfferingItem struct {
	Season    string           `json:"season"`
	Year      int              `json:"year"`
	Location  string           `db:"location" json:"location"`
	Start     models.ClockTime `db:"start_time" json:"start"`
	End       models.ClockTime `db:"end_time" json:"end"`
	FirstName string           `db:"first_name" json:"fname"`
	LastName  string           `db:"last_name" json:"lname"`
	Semester  models.Semester  `db:"semester" json:"-"`
}

// CategoryItem lists an assignment category.
type CategoryItem struct {
	Name   string `db:"name" json:"name"`
	Weight int    `db:"weight" json:"weight"`
}

// AssignmentItem lists an assignment with its submission count.
type AssignmentItem struct {
	Name        string    `db:"aname" json:"aname"`
	Category    string    `db:"cname" json:"cname"`
	Due         time.Time `db:"due_at" json:"due"`
	Submissions int       `db:"submissions" json:"submissions"`
}

// RosterItem is a student enrolled in a class.
type RosterItem struct {
	FirstName string    `db:"first_name" json:"fname"`
	LastName  string    `db:"last_name" json:"lname"`
	UID       string    `db:"uid" json:"uid"`
	DOB       time.Time `db:"dob" json:"dob"`
	Grade     string    `db:"grade" json:"grade"`
}

// SubmissionItem lists a submission to one assignment.
type SubmissionItem struct {
	FirstName string    `db:"first_name" json:"fname"`
	LastName  string    `db:"last_name" json:"lname"`
	UID       string    `db:"uid" json:"uid"`
	Time      time.Time `db:"submitted_at" json:"time"`
	Score     *int      `db:"score" json:"score"`
}

// ProfessorClassItem lists a class taught by a professor.
type ProfessorClassItem struct {
	Subject  string          `db:"subject" json:"subject"`
	Number   int             `db:"number" json:"number"`
	Name     string          `db:"name" json:"name"`
	Season   string          `json:"season"`
	Year     int             `json:"year"`
	Semester models.Semester `db:"semester" json:"-"`
}

// StudentClassItem lists a class a student is enrolled in.
type StudentClassItem struct {
	Subject  string          `db:"subject" json:"subject"`
	Number   int             `db:"number" json:"number"`
	Name     string          `db:"name" json:"name"`
	Season   string          `json:"season"`
	Year     int             `json:"year"`
	Grade    string          `db:"grade" json:"grade"`
	Semester models.Semester `db:"semester" json:"-"`
}

// StudentAssignmentItem lists an assignment of a class with the student's score.
type StudentAssignmentItem struct {
	Name     string    `db:"aname" json:"aname"`
	Category string    `db:"cname" json:"cname"`
	Due      time.Time `db:"due_at" json:"due"`
	Score    *int      `db:"score" json:"score"`
}

// UserProfile is the role-specific projection of a user.
type UserProfile struct {
	FirstName  string          `json:"fname"`
	LastName   string          `json:"lname"`
	UID        string          `json:"uid"`
	Role       models.UserRole `json:"role"`
	Department *string         `json:"department,omitempty"`
}

// GPAResult reports a student's grade point average.
type GPAResult struct {
	GPA           float64 `json:"gpa"`
	GradedClasses int     `json:"graded_classes"`
}

// ClassGradeResult reports the computed grade of one student in one class.
type ClassGradeResult struct {
	Percentage float64 `json:"percentage"`
	Letter     string  `json:"grade"`
	Graded     bool    `json:"graded"`
}
