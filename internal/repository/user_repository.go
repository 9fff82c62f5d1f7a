package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/lms-api/internal/dto"
	"github.com/noah-isme/lms-api/internal/models"
)

const accountQuery = `SELECT uid, first_name, last_name, dob, password_hash, role, department_name FROM (
	SELECT a.uid, a.first_name, a.last_name, a.dob, a.password_hash, 'ADMINISTRATOR' AS role, NULL::VARCHAR AS department_name
	FROM administrators a
	UNION ALL
	SELECT p.uid, p.first_name, p.last_name, p.dob, p.password_hash, 'PROFESSOR' AS role, d.name AS department_name
	FROM professors p JOIN departments d ON d.subject = p.subject
	UNION ALL
	SELECT s.uid, s.first_name, s.last_name, s.dob, s.password_hash, 'STUDENT' AS role, d.name AS department_name
	FROM students s JOIN departments d ON d.subject = s.major
) accounts WHERE uid = $1 LIMIT 1`

// UserRepository reads administrators, professors and students.
type UserRepository struct {
	base
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{base{db: db}}
}

// FindAccount returns the role-tagged account for uid.
func (r *UserRepository) FindAccount(ctx context.Context, uid string) (*models.UserAccount, error) {
	var account models.UserAccount
	if err := r.get(ctx, &account, accountQuery, uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return &account, nil
}

// ProfessorExists reports whether uid is a professor.
func (r *UserRepository) ProfessorExists(ctx context.Context, uid string) (bool, error) {
	ok, err := r.exists(ctx, `SELECT 1 FROM professors WHERE uid = $1 LIMIT 1`, uid)
	if err != nil {
		return false, fmt.Errorf("check professor: %w", err)
	}
	return ok, nil
}

// StudentExists reports whether uid is a student.
func (r *UserRepository) StudentExists(ctx context.Context, uid string) (bool, error) {
	ok, err := r.exists(ctx, `SELECT 1 FROM students WHERE uid = $1 LIMIT 1`, uid)
	if err != nil {
		return false, fmt.Errorf("check student: %w", err)
	}
	return ok, nil
}

// ListProfessors returns the professors working in a department.
func (r *UserRepository) ListProfessors(ctx context.Context, subject string) ([]dto.ProfessorItem, error) {
	const query = `SELECT last_name, first_name, uid FROM professors WHERE subject = $1 ORDER BY last_name, first_name, uid`
	var items []dto.ProfessorItem
	if err := r.selectAll(ctx, &items, query, subject); err != nil {
		return nil, fmt.Errorf("list professors: %w", err)
	}
	return items, nil
}
