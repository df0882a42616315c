package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	appErrors "github.com/vietcommerce/marketplace/internal/errors"
	"github.com/vietcommerce/marketplace/internal/models"
	repository "github.com/vietcommerce/marketplace/internal/repositories"
)

type UserService interface {
	GetCustomerProfile(ctx context.Context, accountID uuid.UUID) (*models.Customer, error)
	UpdateCustomerProfile(ctx context.Context, accountID uuid.UUID, req *models.UpdateCustomerRequest) (*models.Customer, error)
	GetSellerProfile(ctx context.Context, accountID uuid.UUID) (*models.Seller, error)
	UpdateSellerProfile(ctx context.Context, accountID uuid.UUID, req *models.UpdateSellerRequest) (*models.Seller, error)
	ListSellers(ctx context.Context) ([]models.Seller, error)
	ApproveSeller(ctx context.Context, sellerID uuid.UUID, approved bool) (*models.Seller, error)
}

type userService struct {
	customerRepo repository.CustomerRepository
	sellerRepo   repository.SellerRepository
}

func NewUserService(customerRepo repository.CustomerRepository, sellerRepo repository.SellerRepository) UserService {
	return &userService{customerRepo: customerRepo, sellerRepo: sellerRepo}
}

func (s *userService) GetCustomerProfile(ctx context.Context, accountID uuid.UUID) (*models.Customer, error) {

	customer, err := s.customerRepo.GetCustomerByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Customer profile not found")
		}

		return nil, appErrors.DatabaseError("Failed to load customer profile").WithError(err)
	}

	return customer, nil
}

func (s *userService) UpdateCustomerProfile(ctx context.Context, accountID uuid.UUID, req *models.UpdateCustomerRequest) (*models.Customer, error) {

	customer, err := s.GetCustomerProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		customer.FullName = *req.FullName
	}

	if req.Phone != nil {
		customer.Phone = *req.Phone
	}

	if req.Address != nil {
		customer.Address = *req.Address
	}

	if err := s.customerRepo.UpdateCustomer(ctx, customer); err != nil {
		return nil, appErrors.DatabaseError("Failed to update customer profile").WithError(err)
	}

	return customer, nil
}

func (s *userService) GetSellerProfile(ctx context.Context, accountID uuid.UUID) (*models.Seller, error) {

	seller, err := s.sellerRepo.GetSellerByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Seller profile not found")
		}

		return nil, appErrors.DatabaseError("Failed to load seller profile").WithError(err)
	}

	return seller, nil
}

func (s *userService) UpdateSellerProfile(ctx context.Context, accountID uuid.UUID, req *models.UpdateSellerRequest) (*models.Seller, error) {

	seller, err := s.GetSellerProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.StoreName != nil {
		seller.StoreName = *req.StoreName
	}

	if req.Description != nil {
		seller.Description = *req.Description
	}

	if err := s.sellerRepo.UpdateSeller(ctx, seller); err != nil {
		return nil, appErrors.DatabaseError("Failed to update seller profile").WithError(err)
	}

	return seller, nil
}

func (s *userService) ListSellers(ctx context.Context) ([]models.Seller, error) {

	sellers, err := s.sellerRepo.ListSellers(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list sellers").WithError(err)
	}

	return sellers, nil
}

func (s *userService) ApproveSeller(ctx context.Context, sellerID uuid.UUID, approved bool) (*models.Seller, error) {

	if err := s.sellerRepo.SetSellerApproval(ctx, sellerID, approved); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Seller not found")
		}

		return nil, appErrors.DatabaseError("Failed to update seller approval").WithError(err)
	}

	seller, err := s.sellerRepo.GetSellerByID(ctx, sellerID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load seller").WithError(err)
	}

	return seller, nil
}
