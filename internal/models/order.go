package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipping  OrderStatus = "SHIPPING"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipping,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}

	return false
}

// Terminal reports whether no further transition may leave this status.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo enforces PENDING → CONFIRMED → SHIPPING → DELIVERED, with
// CANCELLED reachable from any non-terminal status.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}

	if next == OrderStatusCancelled {
		return true
	}

	switch s {
	case OrderStatusPending:
		return next == OrderStatusConfirmed
	case OrderStatusConfirmed:
		return next == OrderStatusShipping
	case OrderStatusShipping:
		return next == OrderStatusDelivered
	}

	return false
}

type Order struct {
	ID         uuid.UUID       `json:"id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	Total      decimal.Decimal `json:"total"`
	Status     OrderStatus     `json:"status"`
	Items      []OrderItem     `json:"items,omitempty"`
	Payment    *Payment        `json:"payment,omitempty"`
	Customer   *Customer       `json:"customer,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// OrderItem is a price snapshot: UnitPrice is copied from the product at
// order creation and is independent of later price changes.
type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"order_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Product   *Product        `json:"product,omitempty"`
}

type CreateOrderRequest struct {
	PaymentMethod PaymentMethod `json:"payment_method" validate:"required,oneof=COD BANK_TRANSFER CREDIT_CARD E_WALLET"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=PENDING CONFIRMED SHIPPING DELIVERED CANCELLED"`
}
