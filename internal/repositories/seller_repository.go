package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/vietcommerce/marketplace/internal/models"
	"github.com/vietcommerce/marketplace/internal/utils"
)

type SellerRepository interface {
	CreateSeller(ctx context.Context, seller *models.Seller) error
	GetSellerByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Seller, error)
	GetSellerByID(ctx context.Context, id uuid.UUID) (*models.Seller, error)
	UpdateSeller(ctx context.Context, seller *models.Seller) error
	ListSellers(ctx context.Context) ([]models.Seller, error)
	SetSellerApproval(ctx context.Context, id uuid.UUID, approved bool) error
}

type sellerRepository struct {
	DB *sql.DB
}

func NewSellerRepo(db *sql.DB) SellerRepository {
	return &sellerRepository{DB: db}
}

func (r *sellerRepository) CreateSeller(ctx context.Context, seller *models.Seller) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO sellers (id, account_id, store_name, description, approved, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	return r.DB.QueryRowContext(dbCtx, query, seller.ID, seller.AccountID, seller.StoreName, seller.Description, seller.Approved).
		Scan(&seller.CreatedAt)
}

func (r *sellerRepository) GetSellerByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Seller, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT s.id, s.account_id, s.store_name, s.description, s.approved, s.created_at, a.email, a.role
		FROM sellers s
		JOIN accounts a ON a.id = s.account_id
		WHERE s.account_id = $1
	`

	seller := &models.Seller{Account: &models.Account{}}

	err := r.DB.QueryRowContext(dbCtx, query, accountID).
		Scan(&seller.ID, &seller.AccountID, &seller.StoreName, &seller.Description, &seller.Approved,
			&seller.CreatedAt, &seller.Account.Email, &seller.Account.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get seller by account: %w", err)
	}

	seller.Account.ID = seller.AccountID

	return seller, nil
}

func (r *sellerRepository) GetSellerByID(ctx context.Context, id uuid.UUID) (*models.Seller, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, account_id, store_name, description, approved, created_at
		FROM sellers
		WHERE id = $1
	`

	seller := &models.Seller{}

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&seller.ID, &seller.AccountID, &seller.StoreName, &seller.Description, &seller.Approved, &seller.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get seller: %w", err)
	}

	return seller, nil
}

func (r *sellerRepository) UpdateSeller(ctx context.Context, seller *models.Seller) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE sellers
		SET store_name = $1, description = $2
		WHERE id = $3
	`

	result, err := r.DB.ExecContext(dbCtx, query, seller.StoreName, seller.Description, seller.ID)
	if err != nil {
		return fmt.Errorf("failed to update seller: %w", err)
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

func (r *sellerRepository) ListSellers(ctx context.Context) ([]models.Seller, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT s.id, s.account_id, s.store_name, s.description, s.approved, s.created_at, a.email, a.active
		FROM sellers s
		JOIN accounts a ON a.id = s.account_id
		ORDER BY s.created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}

	defer rows.Close()

	var sellers []models.Seller

	for rows.Next() {

		seller := models.Seller{Account: &models.Account{Role: models.RoleSeller}}

		err := rows.Scan(&seller.ID, &seller.AccountID, &seller.StoreName, &seller.Description, &seller.Approved,
			&seller.CreatedAt, &seller.Account.Email, &seller.Account.Active)
		if err != nil {
			return nil, fmt.Errorf("failed to scan seller: %w", err)
		}

		seller.Account.ID = seller.AccountID

		sellers = append(sellers, seller)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sellers, nil
}

func (r *sellerRepository) SetSellerApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE sellers SET approved = $1 WHERE id = $2
	`

	result, err := r.DB.ExecContext(dbCtx, query, approved, id)
	if err != nil {
		return fmt.Errorf("failed to update seller approval: %w", err)
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
