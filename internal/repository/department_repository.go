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

// DepartmentRepository reads departments and the course catalog.
type DepartmentRepository struct {
	base
}

// NewDepartmentRepository constructs the repository.
func NewDepartmentRepository(db *sqlx.DB) *DepartmentRepository {
	return &DepartmentRepository{base{db: db}}
}

// List returns every department ordered by subject.
func (r *DepartmentRepository) List(ctx context.Context) ([]dto.DepartmentItem, error) {
	const query = `SELECT subject, name FROM departments ORDER BY subject`
	var items []dto.DepartmentItem
	if err := r.selectAll(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return items, nil
}

// FindBySubject returns the department owning subject.
func (r *DepartmentRepository) FindBySubject(ctx context.Context, subject string) (*models.Department, error) {
	const query = `SELECT subject, name FROM departments WHERE subject = $1`
	var dept models.Department
	if err := r.get(ctx, &dept, query, subject); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find department: %w", err)
	}
	return &dept, nil
}

// Catalog returns departments left-joined with their courses.
func (r *DepartmentRepository) Catalog(ctx context.Context) ([]dto.CatalogRow, error) {
	const query = `SELECT d.subject, d.name AS dname, c.number, c.name AS cname
FROM departments d
LEFT JOIN courses c ON c.subject = d.subject
ORDER BY d.subject, c.number`
	var rows []dto.CatalogRow
	if err := r.selectAll(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return rows, nil
}
