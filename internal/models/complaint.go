package models

import (
	"time"

	"github.com/google/uuid"
)

type ComplaintStatus string

const (
	ComplaintStatusPending       ComplaintStatus = "PENDING"
	ComplaintStatusInvestigating ComplaintStatus = "INVESTIGATING"
	ComplaintStatusResolved      ComplaintStatus = "RESOLVED"
	ComplaintStatusRejected      ComplaintStatus = "REJECTED"
)

func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintStatusPending, ComplaintStatusInvestigating,
		ComplaintStatusResolved, ComplaintStatusRejected:
		return true
	}

	return false
}

func (s ComplaintStatus) Terminal() bool {
	return s == ComplaintStatusResolved || s == ComplaintStatusRejected
}

func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	if s.Terminal() || !next.Valid() || next == ComplaintStatusPending {
		return false
	}

	return s != next
}

type Complaint struct {
	ID         uuid.UUID       `json:"id"`
	OrderID    uuid.UUID       `json:"order_id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	Content    string          `json:"content"`
	Evidence   []string        `json:"evidence,omitempty"`
	Status     ComplaintStatus `json:"status"`
	Resolution string          `json:"resolution,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	Order      *Order          `json:"order,omitempty"`
	Customer   *Customer       `json:"customer,omitempty"`
}

type CreateComplaintRequest struct {
	OrderID  uuid.UUID `json:"order_id" validate:"required"`
	Content  string    `json:"content" validate:"required"`
	Evidence []string  `json:"evidence,omitempty" validate:"omitempty,dive,url"`
}

type UpdateComplaintStatusRequest struct {
	Status     ComplaintStatus `json:"status" validate:"required,oneof=INVESTIGATING RESOLVED REJECTED"`
	Resolution string          `json:"resolution,omitempty"`
}
