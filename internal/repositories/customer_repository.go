package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/vietcommerce/marketplace/internal/models"
	"github.com/vietcommerce/marketplace/internal/utils"
)

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	GetCustomerByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Customer, error)
	GetCustomerByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, customer *models.Customer) error
}

type customerRepository struct {
	DB *sql.DB
}

func NewCustomerRepo(db *sql.DB) CustomerRepository {
	return &customerRepository{DB: db}
}

func (r *customerRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO customers (id, account_id, full_name, phone, address, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	return r.DB.QueryRowContext(dbCtx, query, customer.ID, customer.AccountID, customer.FullName, customer.Phone, customer.Address).
		Scan(&customer.CreatedAt)
}

func (r *customerRepository) GetCustomerByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Customer, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.id, c.account_id, c.full_name, c.phone, c.address, c.created_at, a.email, a.role
		FROM customers c
		JOIN accounts a ON a.id = c.account_id
		WHERE c.account_id = $1
	`

	customer := &models.Customer{Account: &models.Account{}}

	err := r.DB.QueryRowContext(dbCtx, query, accountID).
		Scan(&customer.ID, &customer.AccountID, &customer.FullName, &customer.Phone, &customer.Address,
			&customer.CreatedAt, &customer.Account.Email, &customer.Account.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get customer by account: %w", err)
	}

	customer.Account.ID = customer.AccountID

	return customer, nil
}

func (r *customerRepository) GetCustomerByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, account_id, full_name, phone, address, created_at
		FROM customers
		WHERE id = $1
	`

	customer := &models.Customer{}

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&customer.ID, &customer.AccountID, &customer.FullName, &customer.Phone, &customer.Address, &customer.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE customers
		SET full_name = $1, phone = $2, address = $3
		WHERE id = $4
	`

	result, err := r.DB.ExecContext(dbCtx, query, customer.FullName, customer.Phone, customer.Address, customer.ID)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
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
