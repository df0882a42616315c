package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vietcommerce/marketplace/internal/models"
)

type PaymentService struct {
	mock.Mock
}

func (m *PaymentService) GetPaymentForOrder(ctx context.Context, claims *models.Claims, orderID uuid.UUID) (*models.Payment, error) {
	args := m.Called(ctx, claims, orderID)

	var payment *models.Payment
	if args.Get(0) != nil {
		payment = args.Get(0).(*models.Payment)
	}

	return payment, args.Error(1)
}

func (m *PaymentService) UpdatePaymentStatus(ctx context.Context, paymentID uuid.UUID, req *models.UpdatePaymentStatusRequest) (*models.Payment, error) {
	args := m.Called(ctx, paymentID, req)

	var payment *models.Payment
	if args.Get(0) != nil {
		payment = args.Get(0).(*models.Payment)
	}

	return payment, args.Error(1)
}

func (m *PaymentService) GetPayment(ctx context.Context, claims *models.Claims, paymentID uuid.UUID) (*models.Payment, error) {
	args := m.Called(ctx, claims, paymentID)

	var payment *models.Payment
	if args.Get(0) != nil {
		payment = args.Get(0).(*models.Payment)
	}

	return payment, args.Error(1)
}
