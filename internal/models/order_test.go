package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"Pending To Confirmed", OrderStatusPending, OrderStatusConfirmed, true},
		{"Confirmed To Shipping", OrderStatusConfirmed, OrderStatusShipping, true},
		{"Shipping To Delivered", OrderStatusShipping, OrderStatusDelivered, true},
		{"Pending To Cancelled", OrderStatusPending, OrderStatusCancelled, true},
		{"Confirmed To Cancelled", OrderStatusConfirmed, OrderStatusCancelled, true},
		{"Shipping To Cancelled", OrderStatusShipping, OrderStatusCancelled, true},
		{"Pending Skips To Shipping", OrderStatusPending, OrderStatusShipping, false},
		{"Pending Skips To Delivered", OrderStatusPending, OrderStatusDelivered, false},
		{"Confirmed Back To Pending", OrderStatusConfirmed, OrderStatusPending, false},
		{"Delivered To Cancelled", OrderStatusDelivered, OrderStatusCancelled, false},
		{"Cancelled To Confirmed", OrderStatusCancelled, OrderStatusConfirmed, false},
		{"Delivered Anywhere", OrderStatusDelivered, OrderStatusShipping, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
	assert.False(t, OrderStatusPending.Terminal())
	assert.False(t, OrderStatusConfirmed.Terminal())
	assert.False(t, OrderStatusShipping.Terminal())
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderStatusPending.Valid())
	assert.True(t, OrderStatusCancelled.Valid())
	assert.False(t, OrderStatus("LOST").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestPaymentStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    PaymentStatus
		to      PaymentStatus
		allowed bool
	}{
		{"Pending To Completed", PaymentStatusPending, PaymentStatusCompleted, true},
		{"Pending To Failed", PaymentStatusPending, PaymentStatusFailed, true},
		{"Completed To Failed", PaymentStatusCompleted, PaymentStatusFailed, false},
		{"Failed To Completed", PaymentStatusFailed, PaymentStatusCompleted, false},
		{"Pending To Pending", PaymentStatusPending, PaymentStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestComplaintStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    ComplaintStatus
		to      ComplaintStatus
		allowed bool
	}{
		{"Pending To Investigating", ComplaintStatusPending, ComplaintStatusInvestigating, true},
		{"Pending To Resolved", ComplaintStatusPending, ComplaintStatusResolved, true},
		{"Investigating To Rejected", ComplaintStatusInvestigating, ComplaintStatusRejected, true},
		{"Back To Pending", ComplaintStatusInvestigating, ComplaintStatusPending, false},
		{"Resolved Is Terminal", ComplaintStatusResolved, ComplaintStatusInvestigating, false},
		{"Rejected Is Terminal", ComplaintStatusRejected, ComplaintStatusResolved, false},
		{"Unknown Target", ComplaintStatusPending, ComplaintStatus("ESCALATED"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderTotalAddsUp(t *testing.T) {
	items := []OrderItem{
		{Quantity: 2, UnitPrice: decimal.RequireFromString("10.50")},
		{Quantity: 3, UnitPrice: decimal.RequireFromString("13.00")},
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	assert.True(t, total.Equal(decimal.RequireFromString("60.00")))

	// fractional prices stay exact
	fractional := decimal.RequireFromString("0.10").Mul(decimal.NewFromInt(3))
	assert.True(t, fractional.Equal(decimal.RequireFromString("0.30")))
}
