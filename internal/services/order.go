package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	appErrors "github.com/vietcommerce/marketplace/internal/errors"
	"github.com/vietcommerce/marketplace/internal/metrics"
	"github.com/vietcommerce/marketplace/internal/models"
	repository "github.com/vietcommerce/marketplace/internal/repositories"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, accountID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrder(ctx context.Context, claims *models.Claims, orderID uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, claims *models.Claims) ([]models.Order, error)
	CancelOrder(ctx context.Context, accountID, orderID uuid.UUID) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, claims *models.Claims, orderID uuid.UUID, req *models.UpdateOrderStatusRequest) (*models.Order, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	cartRepo     repository.CartRepository
	customerRepo repository.CustomerRepository
	sellerRepo   repository.SellerRepository
}

func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, customerRepo repository.CustomerRepository, sellerRepo repository.SellerRepository) OrderService {
	return &orderService{orderRepo: orderRepo, cartRepo: cartRepo, customerRepo: customerRepo, sellerRepo: sellerRepo}
}

func (s *orderService) customer(ctx context.Context, accountID uuid.UUID) (*models.Customer, error) {

	customer, err := s.customerRepo.GetCustomerByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Customer profile not found")
		}

		return nil, appErrors.DatabaseError("Failed to load customer profile").WithError(err)
	}

	return customer, nil
}

// PlaceOrder turns the caller's cart into an order. The repository runs the
// whole conversion in one transaction, so a failure at any step leaves the
// cart untouched.
func (s *orderService) PlaceOrder(ctx context.Context, accountID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error) {

	customer, err := s.customer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetCartByCustomerID(ctx, customer.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.BadRequestError("Cart is empty")
		}

		return nil, appErrors.DatabaseError("Failed to load cart").WithError(err)
	}

	order, err := s.orderRepo.CheckoutCart(ctx, customer.ID, cart.ID, req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmptyCart):
			return nil, appErrors.BadRequestError("Cart is empty")
		case errors.Is(err, repository.ErrInsufficientStock):
			return nil, appErrors.BadRequestError("A cart item exceeds the available stock")
		case errors.Is(err, repository.ErrInactiveProduct):
			return nil, appErrors.BadRequestError("A cart item is no longer available")
		}

		return nil, appErrors.DatabaseError("Failed to place order").WithError(err)
	}

	metrics.OrderPlaced()

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, claims *models.Claims, orderID uuid.UUID) (*models.Order, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found")
		}

		return nil, appErrors.DatabaseError("Failed to load order").WithError(err)
	}

	if claims.Role == models.RoleAdmin {
		return order, nil
	}

	customer, err := s.customer(ctx, claims.AccountID)
	if err != nil {
		return nil, err
	}

	if order.CustomerID != customer.ID {
		return nil, appErrors.ForbiddenError("Order belongs to another customer")
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, claims *models.Claims) ([]models.Order, error) {

	if claims.Role == models.RoleAdmin {

		orders, err := s.orderRepo.ListOrders(ctx)
		if err != nil {
			return nil, appErrors.DatabaseError("Failed to list orders").WithError(err)
		}

		return orders, nil
	}

	customer, err := s.customer(ctx, claims.AccountID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListOrdersByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list orders").WithError(err)
	}

	return orders, nil
}

// CancelOrder lets the customer cancel their own order while it is still
// cancellable per the status machine.
func (s *orderService) CancelOrder(ctx context.Context, accountID, orderID uuid.UUID) (*models.Order, error) {

	customer, err := s.customer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found")
		}

		return nil, appErrors.DatabaseError("Failed to load order").WithError(err)
	}

	if order.CustomerID != customer.ID {
		return nil, appErrors.ForbiddenError("Order belongs to another customer")
	}

	if !order.Status.CanTransitionTo(models.OrderStatusCancelled) {
		return nil, appErrors.BadRequestError(
			fmt.Sprintf("Order in status %s cannot be cancelled", order.Status))
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, models.OrderStatusCancelled); err != nil {
		return nil, appErrors.DatabaseError("Failed to cancel order").WithError(err)
	}

	order.Status = models.OrderStatusCancelled

	return order, nil
}

// UpdateOrderStatus moves the order along its lifecycle. Admins may update
// any order; a seller only orders that contain at least one of their
// products.
func (s *orderService) UpdateOrderStatus(ctx context.Context, claims *models.Claims, orderID uuid.UUID, req *models.UpdateOrderStatusRequest) (*models.Order, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found")
		}

		return nil, appErrors.DatabaseError("Failed to load order").WithError(err)
	}

	if claims.Role == models.RoleSeller {

		seller, err := s.sellerRepo.GetSellerByAccountID(ctx, claims.AccountID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.NotFoundError("Seller profile not found")
			}

			return nil, appErrors.DatabaseError("Failed to load seller profile").WithError(err)
		}

		if !orderContainsSeller(order, seller.ID) {
			return nil, appErrors.ForbiddenError("Order contains none of your products")
		}
	}

	if !order.Status.CanTransitionTo(req.Status) {
		return nil, appErrors.BadRequestError(
			fmt.Sprintf("Order cannot move from %s to %s", order.Status, req.Status))
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, req.Status); err != nil {
		return nil, appErrors.DatabaseError("Failed to update order status").WithError(err)
	}

	order.Status = req.Status

	return order, nil
}

func orderContainsSeller(order *models.Order, sellerID uuid.UUID) bool {
	for _, item := range order.Items {
		if item.Product != nil && item.Product.SellerID == sellerID {
			return true
		}
	}

	return false
}
