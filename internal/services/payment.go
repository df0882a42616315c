package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	appErrors "github.com/vietcommerce/marketplace/internal/errors"
	"github.com/vietcommerce/marketplace/internal/models"
	repository "github.com/vietcommerce/marketplace/internal/repositories"
)

type PaymentService interface {
	GetPayment(ctx context.Context, claims *models.Claims, paymentID uuid.UUID) (*models.Payment, error)
	GetPaymentForOrder(ctx context.Context, claims *models.Claims, orderID uuid.UUID) (*models.Payment, error)
	UpdatePaymentStatus(ctx context.Context, paymentID uuid.UUID, req *models.UpdatePaymentStatusRequest) (*models.Payment, error)
}

type paymentService struct {
	paymentRepo  repository.PaymentRepository
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository, customerRepo repository.CustomerRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, orderRepo: orderRepo, customerRepo: customerRepo}
}

// ownOrder rejects non-admin callers reading another customer's order.
func (s *paymentService) ownOrder(ctx context.Context, claims *models.Claims, orderID uuid.UUID) (*models.Order, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found")
		}

		return nil, appErrors.DatabaseError("Failed to load order").WithError(err)
	}

	if claims.Role != models.RoleAdmin {

		customer, err := s.customerRepo.GetCustomerByAccountID(ctx, claims.AccountID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.NotFoundError("Customer profile not found")
			}

			return nil, appErrors.DatabaseError("Failed to load customer profile").WithError(err)
		}

		if order.CustomerID != customer.ID {
			return nil, appErrors.ForbiddenError("Order belongs to another customer")
		}
	}

	return order, nil
}

func (s *paymentService) GetPayment(ctx context.Context, claims *models.Claims, paymentID uuid.UUID) (*models.Payment, error) {

	payment, err := s.paymentRepo.GetPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Payment not found")
		}

		return nil, appErrors.DatabaseError("Failed to load payment").WithError(err)
	}

	order, err := s.ownOrder(ctx, claims, payment.OrderID)
	if err != nil {
		return nil, err
	}

	payment.Order = order

	return payment, nil
}

func (s *paymentService) GetPaymentForOrder(ctx context.Context, claims *models.Claims, orderID uuid.UUID) (*models.Payment, error) {

	if _, err := s.ownOrder(ctx, claims, orderID); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.GetPaymentByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Payment not found")
		}

		return nil, appErrors.DatabaseError("Failed to load payment").WithError(err)
	}

	return payment, nil
}

// UpdatePaymentStatus finalizes a pending payment. Settled payments never
// change again.
func (s *paymentService) UpdatePaymentStatus(ctx context.Context, paymentID uuid.UUID, req *models.UpdatePaymentStatusRequest) (*models.Payment, error) {

	payment, err := s.paymentRepo.GetPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Payment not found")
		}

		return nil, appErrors.DatabaseError("Failed to load payment").WithError(err)
	}

	if !payment.Status.CanTransitionTo(req.Status) {
		return nil, appErrors.BadRequestError(
			fmt.Sprintf("Payment cannot move from %s to %s", payment.Status, req.Status))
	}

	if err := s.paymentRepo.UpdatePaymentStatus(ctx, paymentID, req.Status); err != nil {
		return nil, appErrors.DatabaseError("Failed to update payment status").WithError(err)
	}

	payment.Status = req.Status

	return payment, nil
}
