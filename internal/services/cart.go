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

type CartService interface {
	GetCart(ctx context.Context, accountID uuid.UUID) (*models.Cart, error)
	AddItem(ctx context.Context, accountID uuid.UUID, req *models.AddCartItemRequest) (*models.Cart, error)
	UpdateItem(ctx context.Context, accountID, itemID uuid.UUID, req *models.UpdateCartItemRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, accountID, itemID uuid.UUID) (*models.Cart, error)
	ClearCart(ctx context.Context, accountID uuid.UUID) (*models.Cart, error)
}

type cartService struct {
	cartRepo     repository.CartRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, customerRepo repository.CustomerRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{cartRepo: cartRepo, customerRepo: customerRepo, productRepo: productRepo}
}

func (s *cartService) customer(ctx context.Context, accountID uuid.UUID) (*models.Customer, error) {

	customer, err := s.customerRepo.GetCustomerByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Customer profile not found")
		}

		return nil, appErrors.DatabaseError("Failed to load customer profile").WithError(err)
	}

	return customer, nil
}

// cartOf returns the customer's cart, creating it if registration predates
// lazy cart creation.
func (s *cartService) cartOf(ctx context.Context, customerID uuid.UUID) (*models.Cart, error) {

	cart, err := s.cartRepo.GetCartByCustomerID(ctx, customerID)
	if err == nil {
		return cart, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.DatabaseError("Failed to load cart").WithError(err)
	}

	cart = &models.Cart{ID: uuid.New(), CustomerID: customerID}

	if err := s.cartRepo.CreateCart(ctx, cart); err != nil {
		return nil, appErrors.DatabaseError("Failed to create cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) GetCart(ctx context.Context, accountID uuid.UUID) (*models.Cart, error) {

	customer, err := s.customer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if _, err := s.cartOf(ctx, customer.ID); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetCartWithItems(ctx, customer.ID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) AddItem(ctx context.Context, accountID uuid.UUID, req *models.AddCartItemRequest) (*models.Cart, error) {

	customer, err := s.customer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartOf(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found")
		}

		return nil, appErrors.DatabaseError("Failed to load product").WithError(err)
	}

	if !product.Active {
		return nil, appErrors.BadRequestError("Product is no longer available")
	}

	existing, err := s.cartRepo.GetItemByCartAndProduct(ctx, cart.ID, req.ProductID)

	switch {
	case err == nil:

		newQuantity := existing.Quantity + req.Quantity
		if newQuantity > product.Stock {
			return nil, appErrors.BadRequestError("Requested quantity exceeds available stock")
		}

		if err := s.cartRepo.UpdateItemQuantity(ctx, existing.ID, newQuantity); err != nil {
			return nil, appErrors.DatabaseError("Failed to update cart item").WithError(err)
		}

	case errors.Is(err, sql.ErrNoRows):

		if req.Quantity > product.Stock {
			return nil, appErrors.BadRequestError("Requested quantity exceeds available stock")
		}

		item := &models.CartItem{
			ID:        uuid.New(),
			CartID:    cart.ID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		}

		if err := s.cartRepo.InsertItem(ctx, item); err != nil {
			return nil, appErrors.DatabaseError("Failed to add cart item").WithError(err)
		}

	default:
		return nil, appErrors.DatabaseError("Failed to check cart item").WithError(err)
	}

	updated, err := s.cartRepo.GetCartWithItems(ctx, customer.ID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load cart").WithError(err)
	}

	return updated, nil
}

// ownItem loads the cart item and checks it belongs to the caller's cart.
func (s *cartService) ownItem(ctx context.Context, accountID, itemID uuid.UUID) (*models.Customer, *models.CartItem, error) {

	customer, err := s.customer(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}

	cart, err := s.cartOf(ctx, customer.ID)
	if err != nil {
		return nil, nil, err
	}

	item, err := s.cartRepo.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.NotFoundError("Cart item not found")
		}

		return nil, nil, appErrors.DatabaseError("Failed to load cart item").WithError(err)
	}

	if item.CartID != cart.ID {
		return nil, nil, appErrors.ForbiddenError("Cart item belongs to another cart")
	}

	return customer, item, nil
}

func (s *cartService) UpdateItem(ctx context.Context, accountID, itemID uuid.UUID, req *models.UpdateCartItemRequest) (*models.Cart, error) {

	customer, item, err := s.ownItem(ctx, accountID, itemID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetProductByID(ctx, item.ProductID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load product").WithError(err)
	}

	if req.Quantity > product.Stock {
		return nil, appErrors.BadRequestError("Requested quantity exceeds available stock")
	}

	if err := s.cartRepo.UpdateItemQuantity(ctx, item.ID, req.Quantity); err != nil {
		return nil, appErrors.DatabaseError("Failed to update cart item").WithError(err)
	}

	cart, err := s.cartRepo.GetCartWithItems(ctx, customer.ID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) ClearCart(ctx context.Context, accountID uuid.UUID) (*models.Cart, error) {

	customer, err := s.customer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartOf(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.ClearItems(ctx, cart.ID); err != nil {
		return nil, appErrors.DatabaseError("Failed to clear cart").WithError(err)
	}

	cart.Items = nil

	return cart, nil
}

func (s *cartService) RemoveItem(ctx context.Context, accountID, itemID uuid.UUID) (*models.Cart, error) {

	customer, item, err := s.ownItem(ctx, accountID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.DeleteItem(ctx, item.ID); err != nil {
		return nil, appErrors.DatabaseError("Failed to remove cart item").WithError(err)
	}

	cart, err := s.cartRepo.GetCartWithItems(ctx, customer.ID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load cart").WithError(err)
	}

	return cart, nil
}
