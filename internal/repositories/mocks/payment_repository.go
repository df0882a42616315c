package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vietcommerce/marketplace/internal/models"
)

type PaymentRepository struct {
	mock.Mock
}

func (m *PaymentRepository) GetPaymentByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	args := m.Called(ctx, id)

	var payment *models.Payment
	if args.Get(0) != nil {
		payment = args.Get(0).(*models.Payment)
	}

	return payment, args.Error(1)
}

func (m *PaymentRepository) GetPaymentByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Payment, error) {
	args := m.Called(ctx, orderID)

	var payment *models.Payment
	if args.Get(0) != nil {
		payment = args.Get(0).(*models.Payment)
	}

	return payment, args.Error(1)
}

func (m *PaymentRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}
