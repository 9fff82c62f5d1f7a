package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/lms-api/internal/dto"
	"github.com/noah-isme/lms-api/internal/models"
)

// EnrollmentRepository handles persistence of enrollments.
type EnrollmentRepository struct {
	base
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{base{db: db}}
}

// Exists checks whether the student is already enrolled in the class.
func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, classID string) (bool, error) {
	ok, err := r.exists(ctx, `SELECT 1 FROM enrollments WHERE student_id = $1 AND class_id = $2 LIMIT 1`, studentID, classID)
	if err != nil {
		return false, fmt.Errorf("check enrollment: %w", err)
	}
	return ok, nil
}

// Create persists a new ungraded enrollment.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	const query = `INSERT INTO enrollments (student_id, class_id, grade) VALUES ($1, $2, $3)`
	if _, err := r.exec(ctx, query, enrollment.StudentID, enrollment.ClassID, enrollment.Grade); err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

// SetGrade stores the letter grade for an enrollment.
func (r *EnrollmentRepository) SetGrade(ctx context.Context, studentID, classID string, grade *string) error {
	const query = `UPDATE enrollments SET grade = $3 WHERE student_id = $1 AND class_id = $2`
	res, err := r.exec(ctx, query, studentID, classID, grade)
	if err != nil {
		return fmt.Errorf("update enrollment grade: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Roster returns students enrolled in a class ordered by uid.
func (r *EnrollmentRepository) Roster(ctx context.Context, classID string) ([]dto.RosterItem, error) {
	const query = `SELECT s.first_name, s.last_name, s.uid, s.dob, COALESCE(e.grade, '--') AS grade
FROM enrollments e
JOIN students s ON s.uid = e.student_id
WHERE e.class_id = $1
ORDER BY s.uid`
	var items []dto.RosterItem
	if err := r.selectAll(ctx, &items, query, classID); err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	return items, nil
}

// ListForStudent returns the classes a student is enrolled in.
func (r *EnrollmentRepository) ListForStudent(ctx context.Context, studentID string) ([]dto.StudentClassItem, error) {
	const query = `SELECT c.subject, c.number, c.name, co.semester, COALESCE(e.grade, '--') AS grade
FROM enrollments e
JOIN class_offerings co ON co.id = e.class_id
JOIN courses c ON c.id = co.course_id
WHERE e.student_id = $1
ORDER BY ` + semesterOrder + `, c.subject, c.number`
	var items []dto.StudentClassItem
	if err := r.selectAll(ctx, &items, query, studentID); err != nil {
		return nil, fmt.Errorf("list student classes: %w", err)
	}
	for i := range items {
		items[i].Season = items[i].Semester.Season
		items[i].Year = items[i].Semester.Year
	}
	return items, nil
}

// GradesForStudent returns every enrollment row of a student.
func (r *EnrollmentRepository) GradesForStudent(ctx context.Context, studentID string) ([]models.Enrollment, error) {
	const query = `SELECT student_id, class_id, grade FROM enrollments WHERE student_id = $1`
	var enrollments []models.Enrollment
	if err := r.selectAll(ctx, &enrollments, query, studentID); err != nil {
		return nil, fmt.Errorf("list student grades: %w", err)
	}
	return enrollments, nil
}

// GradedStudents returns the students of a class whose grade has been assigned.
func (r *EnrollmentRepository) GradedStudents(ctx context.Context, classID string) ([]string, error) {
	const query = `SELECT student_id FROM enrollments WHERE class_id = $1 AND grade IS NOT NULL ORDER BY student_id`
	var students []string
	if err := r.selectAll(ctx, &students, query, classID); err != nil {
		return nil, fmt.Errorf("list graded students: %w", err)
	}
	return students, nil
}
