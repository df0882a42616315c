package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/vietcommerce/marketplace/internal/models"
	"github.com/vietcommerce/marketplace/internal/utils"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context, filter *models.ProductFilter) ([]models.Product, int, error)
	ListProductsBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeactivateProduct(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	images, err := json.Marshal(product.Images)
	if err != nil {
		return fmt.Errorf("failed to marshal product images: %w", err)
	}

	query := `
		INSERT INTO products (id, seller_id, category_id, name, description, price, stock, images, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING created_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		product.ID, product.SellerID, product.CategoryID, product.Name, product.Description,
		product.Price, product.Stock, images, product.Active).
		Scan(&product.CreatedAt)
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT p.id, p.seller_id, p.category_id, p.name, p.description, p.price, p.stock, p.images, p.active, p.created_at,
		       c.name, s.store_name, s.approved
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN sellers s ON s.id = p.seller_id
		WHERE p.id = $1
	`

	product := &models.Product{
		Category: &models.Category{},
		Seller:   &models.Seller{},
	}

	var images []byte

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&product.ID, &product.SellerID, &product.CategoryID, &product.Name, &product.Description,
			&product.Price, &product.Stock, &images, &product.Active, &product.CreatedAt,
			&product.Category.Name, &product.Seller.StoreName, &product.Seller.Approved)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if len(images) > 0 {
		if err := json.Unmarshal(images, &product.Images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal product images: %w", err)
		}
	}

	product.Category.ID = product.CategoryID
	product.Seller.ID = product.SellerID

	return product, nil
}

func (r *productRepository) ListProducts(ctx context.Context, filter *models.ProductFilter) ([]models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	args := []any{}
	where := `WHERE p.active = TRUE`

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where += fmt.Sprintf(" AND p.name ILIKE $%d", len(args))
	}

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		where += fmt.Sprintf(" AND p.category_id = $%d", len(args))
	}

	var total int

	countQuery := `SELECT COUNT(*) FROM products p ` + where
	if err := r.DB.QueryRowContext(dbCtx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	args = append(args, filter.PageSize, offset)

	query := fmt.Sprintf(`
		SELECT p.id, p.seller_id, p.category_id, p.name, p.description, p.price, p.stock, p.images, p.created_at,
		       c.name, s.store_name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN sellers s ON s.id = p.seller_id
		%s
		ORDER BY p.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	defer rows.Close()

	var products []models.Product

	for rows.Next() {

		product := models.Product{
			Active:   true,
			Category: &models.Category{},
			Seller:   &models.Seller{},
		}

		var images []byte

		err := rows.Scan(&product.ID, &product.SellerID, &product.CategoryID, &product.Name, &product.Description,
			&product.Price, &product.Stock, &images, &product.CreatedAt,
			&product.Category.Name, &product.Seller.StoreName)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}

		if len(images) > 0 {
			if err := json.Unmarshal(images, &product.Images); err != nil {
				return nil, 0, fmt.Errorf("failed to unmarshal product images: %w", err)
			}
		}

		product.Category.ID = product.CategoryID
		product.Seller.ID = product.SellerID

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) ListProductsBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT p.id, p.seller_id, p.category_id, p.name, p.description, p.price, p.stock, p.images, p.active, p.created_at, c.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.seller_id = $1
		ORDER BY p.created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seller products: %w", err)
	}

	defer rows.Close()

	var products []models.Product

	for rows.Next() {

		product := models.Product{Category: &models.Category{}}

		var images []byte

		err := rows.Scan(&product.ID, &product.SellerID, &product.CategoryID, &product.Name, &product.Description,
			&product.Price, &product.Stock, &images, &product.Active, &product.CreatedAt, &product.Category.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		if len(images) > 0 {
			if err := json.Unmarshal(images, &product.Images); err != nil {
				return nil, fmt.Errorf("failed to unmarshal product images: %w", err)
			}
		}

		product.Category.ID = product.CategoryID

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	images, err := json.Marshal(product.Images)
	if err != nil {
		return fmt.Errorf("failed to marshal product images: %w", err)
	}

	query := `
		UPDATE products
		SET category_id = $1, name = $2, description = $3, price = $4, stock = $5, images = $6, active = $7
		WHERE id = $8
	`

	result, err := r.DB.ExecContext(dbCtx, query,
		product.CategoryID, product.Name, product.Description, product.Price, product.Stock, images, product.Active, product.ID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
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

// DeactivateProduct is a soft delete; order lines keep referencing the row.
func (r *productRepository) DeactivateProduct(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE products SET active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate product: %w", err)
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
