package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vietcommerce/marketplace/internal/models"
)

type AuthService struct {
	mock.Mock
}

func (m *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)

	var resp *models.AuthResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*models.AuthResponse)
	}

	return resp, args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)

	var resp *models.AuthResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*models.AuthResponse)
	}

	return resp, args.Error(1)
}
