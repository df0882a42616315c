package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/vietcommerce/marketplace/internal/models"
	"github.com/vietcommerce/marketplace/internal/utils"
)

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type categoryRepository struct {
	DB *sql.DB
}

func NewCategoryRepo(db *sql.DB) CategoryRepository {
	return &categoryRepository{DB: db}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO categories (id, name, parent_id)
		VALUES ($1, $2, $3)
	`

	_, err := r.DB.ExecContext(dbCtx, query, category.ID, category.Name, category.ParentID)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.id, c.name, c.parent_id, p.id, p.name
		FROM categories c
		LEFT JOIN categories p ON p.id = c.parent_id
		WHERE c.id = $1
	`

	category := &models.Category{}

	var selfParent uuid.NullUUID

	var parentID uuid.NullUUID

	var parentName sql.NullString

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&category.ID, &category.Name, &selfParent, &parentID, &parentName)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if selfParent.Valid {
		category.ParentID = &selfParent.UUID
	}

	if parentID.Valid {
		category.Parent = &models.Category{ID: parentID.UUID, Name: parentName.String}
	}

	// children
	query = `
		SELECT id, name FROM categories WHERE parent_id = $1 ORDER BY name
	`

	rows, err := r.DB.QueryContext(dbCtx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get child categories: %w", err)
	}

	defer rows.Close()

	for rows.Next() {

		child := models.Category{ParentID: &category.ID}

		if err := rows.Scan(&child.ID, &child.Name); err != nil {
			return nil, fmt.Errorf("failed to scan child category: %w", err)
		}

		category.Children = append(category.Children, child)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return category, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, parent_id FROM categories ORDER BY name
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	defer rows.Close()

	var categories []models.Category

	for rows.Next() {

		var category models.Category

		var parentID uuid.NullUUID

		if err := rows.Scan(&category.ID, &category.Name, &parentID); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}

		if parentID.Valid {
			category.ParentID = &parentID.UUID
		}

		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// assemble the tree in memory, single pass over FK pairs
	byID := make(map[uuid.UUID]*models.Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}

	for i := range categories {
		if categories[i].ParentID == nil {
			continue
		}
		if parent, ok := byID[*categories[i].ParentID]; ok {
			parent.Children = append(parent.Children, models.Category{
				ID:       categories[i].ID,
				Name:     categories[i].Name,
				ParentID: categories[i].ParentID,
			})
		}
	}

	return categories, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE categories SET name = $1, parent_id = $2 WHERE id = $3
	`

	result, err := r.DB.ExecContext(dbCtx, query, category.Name, category.ParentID, category.ID)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	deletedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deletedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
