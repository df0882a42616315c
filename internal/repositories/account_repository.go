package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/vietcommerce/marketplace/internal/models"
	"github.com/vietcommerce/marketplace/internal/utils"
)

type AccountRepository interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	CreateAdmin(ctx context.Context, admin *models.Admin) error
}

type accountRepository struct {
	DB *sql.DB
}

func NewAccountRepo(db *sql.DB) AccountRepository {
	return &accountRepository{DB: db}
}

func (r *accountRepository) CreateAccount(ctx context.Context, account *models.Account) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO accounts (id, email, password_hash, role, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, account.ID, account.Email, account.PasswordHash, account.Role, account.Active).
		Scan(&account.CreatedAt, &account.UpdatedAt)
}

func (r *accountRepository) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, email, password_hash, role, active, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`

	account := &models.Account{}

	err := r.DB.QueryRowContext(dbCtx, query, email).
		Scan(&account.ID, &account.Email, &account.PasswordHash, &account.Role, &account.Active, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return account, nil
}

func (r *accountRepository) GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, email, password_hash, role, active, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	account := &models.Account{}

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&account.ID, &account.Email, &account.PasswordHash, &account.Role, &account.Active, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

func (r *accountRepository) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO admins (id, account_id, created_at)
		VALUES ($1, $2, NOW())
		RETURNING created_at
	`

	return r.DB.QueryRowContext(dbCtx, query, admin.ID, admin.AccountID).Scan(&admin.CreatedAt)
}
