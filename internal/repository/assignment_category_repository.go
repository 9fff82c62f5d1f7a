package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/lms-api/internal/dto"
	"github.com/noah-isme/lms-api/internal/models"
)

// AssignmentCategoryRepository persists weighted categories of a class offering.
type AssignmentCategoryRepository struct {
	base
}

// NewAssignmentCategoryRepository constructs the repository.
func NewAssignmentCategoryRepository(db *sqlx.DB) *AssignmentCategoryRepository {
	return &AssignmentCategoryRepository{base{db: db}}
}

// ListForClass returns the categories of a class ordered by name.
func (r *AssignmentCategoryRepository) ListForClass(ctx context.Context, classID string) ([]dto.CategoryItem, error) {
	const query = `SELECT name, weight FROM assignment_categories WHERE class_id = $1 ORDER BY name`
	var items []dto.CategoryItem
	if err := r.selectAll(ctx, &items, query, classID); err != nil {
		return nil, fmt.Errorf("list assignment categories: %w", err)
	}
	return items, nil
}

// FindByName resolves a category inside a class.
func (r *AssignmentCategoryRepository) FindByName(ctx context.Context, classID, name string) (*models.AssignmentCategory, error) {
	const query = `SELECT id, class_id, name, weight FROM assignment_categories WHERE class_id = $1 AND name = $2`
	var category models.AssignmentCategory
	if err := r.get(ctx, &category, query, classID, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find assignment category: %w", err)
	}
	return &category, nil
}

// Exists reports whether the class already has a category with name.
func (r *AssignmentCategoryRepository) Exists(ctx context.Context, classID, name string) (bool, error) {
	ok, err := r.exists(ctx, `SELECT 1 FROM assignment_categories WHERE class_id = $1 AND name = $2 LIMIT 1`, classID, name)
	if err != nil {
		return false, fmt.Errorf("check assignment category: %w", err)
	}
	return ok, nil
}

// Create inserts a category.
func (r *AssignmentCategoryRepository) Create(ctx context.Context, category *models.AssignmentCategory) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	const query = `INSERT INTO assignment_categories (id, class_id, name, weight) VALUES ($1, $2, $3, $4)`
	if _, err := r.exec(ctx, query, category.ID, category.ClassID, category.Name, category.Weight); err != nil {
		return fmt.Errorf("create assignment category: %w", err)
	}
	return nil
}
