package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	FullName  string    `json:"full_name,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Account   *Account  `json:"account,omitempty"`
}

type Seller struct {
	ID          uuid.UUID `json:"id"`
	AccountID   uuid.UUID `json:"account_id"`
	StoreName   string    `json:"store_name,omitempty"`
	Description string    `json:"description,omitempty"`
	Approved    bool      `json:"approved"`
	CreatedAt   time.Time `json:"created_at"`
	Account     *Account  `json:"account,omitempty"`
}

type Admin struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateCustomerRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=255"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address  *string `json:"address,omitempty"`
}

type UpdateSellerRequest struct {
	StoreName   *string `json:"store_name,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
}

type SellerApprovalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}
