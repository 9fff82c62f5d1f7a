package models

import "time"

// UserRole represents the disjoint roles a uid can hold.
type UserRole string

const (
	RoleAdministrator UserRole = "ADMINISTRATOR"
	RoleProfessor     UserRole = "PROFESSOR"
	RoleStudent       UserRole = "STUDENT"
)

// Person holds the attributes shared by every role table.
type Person struct {
	UID          string    `db:"uid" json:"uid"`
	FirstName    string    `db:"first_name" json:"fname"`
	LastName     string    `db:"last_name" json:"lname"`
	DOB          time.Time `db:"dob" json:"dob"`
	PasswordHash string    `db:"password_hash" json:"-"`
}

// Student majors in a department.
type Student struct {
	Person
	Major string `db:"major" json:"major"`
}

// Professor works in a department.
type Professor struct {
	Person
	Subject string `db:"subject" json:"subject"`
}

// Administrator has no department affiliation.
type Administrator struct {
	Person
}

// UserAccount is the role-tagged row used for authentication and profile lookups.
type UserAccount struct {
	Person
	Role           UserRole `db:"role" json:"role"`
	DepartmentName *string  `db:"department_name" json:"department,omitempty"`
}
