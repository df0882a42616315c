package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
	"github.com/vietcommerce/marketplace/internal/cache"
	"github.com/vietcommerce/marketplace/internal/config"
	appErrors "github.com/vietcommerce/marketplace/internal/errors"
	"github.com/vietcommerce/marketplace/internal/models"
	repository "github.com/vietcommerce/marketplace/internal/repositories"
)

type ProductService interface {
	CreateProduct(ctx context.Context, sellerAccountID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context, filter *models.ProductFilter) (*models.PaginatedResponse, error)
	ListOwnProducts(ctx context.Context, sellerAccountID uuid.UUID) ([]models.Product, error)
	UpdateProduct(ctx context.Context, sellerAccountID, productID uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, sellerAccountID, productID uuid.UUID) error
}

type productService struct {
	productRepo  repository.ProductRepository
	sellerRepo   repository.SellerRepository
	categoryRepo repository.CategoryRepository
	reviewRepo   repository.ReviewRepository
	cache        cache.Cache
	cacheTTL     config.CacheConfig
	sanitizer    *bluemonday.Policy
}

func NewProductService(productRepo repository.ProductRepository, sellerRepo repository.SellerRepository, categoryRepo repository.CategoryRepository, reviewRepo repository.ReviewRepository, productCache cache.Cache, cacheCfg config.CacheConfig) ProductService {
	return &productService{
		productRepo:  productRepo,
		sellerRepo:   sellerRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
		cache:        productCache,
		cacheTTL:     cacheCfg,
		sanitizer:    bluemonday.UGCPolicy(),
	}
}

// approvedSeller resolves the caller's seller profile and rejects sellers an
// admin has not approved yet.
func (s *productService) approvedSeller(ctx context.Context, accountID uuid.UUID) (*models.Seller, error) {

	seller, err := s.sellerRepo.GetSellerByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Seller profile not found")
		}

		return nil, appErrors.DatabaseError("Failed to load seller profile").WithError(err)
	}

	if !seller.Approved {
		return nil, appErrors.ForbiddenError("Seller is not approved yet")
	}

	return seller, nil
}

func (s *productService) CreateProduct(ctx context.Context, sellerAccountID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error) {

	seller, err := s.approvedSeller(ctx, sellerAccountID)
	if err != nil {
		return nil, err
	}

	if req.Price.LessThanOrEqual(decimal.Zero) {
		return nil, appErrors.ValidationError("Price must be greater than zero")
	}

	if _, err := s.categoryRepo.GetCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.BadRequestError("Category does not exist")
		}

		return nil, appErrors.DatabaseError("Failed to load category").WithError(err)
	}

	product := &models.Product{
		ID:          uuid.New(),
		SellerID:    seller.ID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: s.sanitizer.Sanitize(req.Description),
		Price:       req.Price,
		Stock:       req.Stock,
		Images:      req.Images,
		Active:      true,
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, appErrors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {

	key := cache.Key(cache.ProductKeyPrefix, id.String())

	var cached models.Product

	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		slog.Warn("product cache read failed", slog.String("error", err.Error()))
	}

	if found {
		return &cached, nil
	}

	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found")
		}

		return nil, appErrors.DatabaseError("Failed to load product").WithError(err)
	}

	if !product.Active {
		return nil, appErrors.NotFoundError("Product not found")
	}

	reviews, err := s.reviewRepo.ListReviewsByProduct(ctx, id)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load product reviews").WithError(err)
	}

	product.Reviews = reviews

	if err := s.cache.Set(ctx, key, product, s.cacheTTL.ProductTTL); err != nil {
		slog.Warn("product cache write failed", slog.String("error", err.Error()))
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, filter *models.ProductFilter) (*models.PaginatedResponse, error) {

	if filter.Page < 1 {
		filter.Page = 1
	}

	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	products, total, err := s.productRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list products").WithError(err)
	}

	return &models.PaginatedResponse{
		Data:     products,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (s *productService) ListOwnProducts(ctx context.Context, sellerAccountID uuid.UUID) ([]models.Product, error) {

	seller, err := s.sellerRepo.GetSellerByAccountID(ctx, sellerAccountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Seller profile not found")
		}

		return nil, appErrors.DatabaseError("Failed to load seller profile").WithError(err)
	}

	products, err := s.productRepo.ListProductsBySeller(ctx, seller.ID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list products").WithError(err)
	}

	return products, nil
}

// ownProduct loads the product and checks it belongs to the caller.
func (s *productService) ownProduct(ctx context.Context, sellerAccountID, productID uuid.UUID) (*models.Product, error) {

	seller, err := s.approvedSeller(ctx, sellerAccountID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found")
		}

		return nil, appErrors.DatabaseError("Failed to load product").WithError(err)
	}

	if product.SellerID != seller.ID {
		return nil, appErrors.ForbiddenError("Product belongs to another seller")
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, sellerAccountID, productID uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.ownProduct(ctx, sellerAccountID, productID)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetCategoryByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.BadRequestError("Category does not exist")
			}

			return nil, appErrors.DatabaseError("Failed to load category").WithError(err)
		}

		product.CategoryID = *req.CategoryID
	}

	if req.Name != nil {
		product.Name = *req.Name
	}

	if req.Description != nil {
		product.Description = s.sanitizer.Sanitize(*req.Description)
	}

	if req.Price != nil {
		if req.Price.LessThanOrEqual(decimal.Zero) {
			return nil, appErrors.ValidationError("Price must be greater than zero")
		}

		product.Price = *req.Price
	}

	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if req.Images != nil {
		product.Images = *req.Images
	}

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, appErrors.DatabaseError("Failed to update product").WithError(err)
	}

	if err := s.cache.Delete(ctx, cache.Key(cache.ProductKeyPrefix, productID.String())); err != nil {
		slog.Warn("product cache invalidation failed", slog.String("error", err.Error()))
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, sellerAccountID, productID uuid.UUID) error {

	if _, err := s.ownProduct(ctx, sellerAccountID, productID); err != nil {
		return err
	}

	if err := s.productRepo.DeactivateProduct(ctx, productID); err != nil {
		return appErrors.DatabaseError("Failed to delete product").WithError(err)
	}

	if err := s.cache.Delete(ctx, cache.Key(cache.ProductKeyPrefix, productID.String())); err != nil {
		slog.Warn("product cache invalidation failed", slog.String("error", err.Error()))
	}

	return nil
}
