package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vietcommerce/marketplace/internal/models"
)

type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) CreateAccount(ctx context.Context, account *models.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *AccountRepository) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	args := m.Called(ctx, email)

	var account *models.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*models.Account)
	}

	return account, args.Error(1)
}

func (m *AccountRepository) GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	args := m.Called(ctx, id)

	var account *models.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*models.Account)
	}

	return account, args.Error(1)
}

func (m *AccountRepository) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	args := m.Called(ctx, admin)

	return args.Error(0)
}
