package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	appErrors "github.com/vietcommerce/marketplace/internal/errors"
	"github.com/vietcommerce/marketplace/internal/models"
	repository "github.com/vietcommerce/marketplace/internal/repositories"
	"github.com/vietcommerce/marketplace/internal/repositories/redis"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

type authService struct {
	accountRepo  repository.AccountRepository
	customerRepo repository.CustomerRepository
	sellerRepo   repository.SellerRepository
	cartRepo     repository.CartRepository
	rateLimiter  redis.RateLimiter
	jwtKey       []byte
	tokenTTL     time.Duration
}

func NewAuthService(accountRepo repository.AccountRepository, customerRepo repository.CustomerRepository, sellerRepo repository.SellerRepository, cartRepo repository.CartRepository, rateLimiter redis.RateLimiter, jwtKey []byte, tokenTTL time.Duration) AuthService {
	return &authService{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		sellerRepo:   sellerRepo,
		cartRepo:     cartRepo,
		rateLimiter:  rateLimiter,
		jwtKey:       jwtKey,
		tokenTTL:     tokenTTL,
	}
}

// Register creates the account plus its role profile and signs the caller in.
// Customers also get an empty cart so checkout never has to create one.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {

	existing, _ := s.accountRepo.GetAccountByEmail(ctx, req.Email)
	if existing != nil {
		return nil, appErrors.DuplicateEntryError("Email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.InternalError("Failed to secure password").WithError(err)
	}

	account := &models.Account{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         req.Role,
		Active:       true,
	}

	if err := s.accountRepo.CreateAccount(ctx, account); err != nil {
		return nil, appErrors.DatabaseError("Failed to create account").WithError(err)
	}

	switch req.Role {
	case models.RoleCustomer:

		customer := &models.Customer{ID: uuid.New(), AccountID: account.ID}
		if err := s.customerRepo.CreateCustomer(ctx, customer); err != nil {
			return nil, appErrors.DatabaseError("Failed to create customer profile").WithError(err)
		}

		cart := &models.Cart{ID: uuid.New(), CustomerID: customer.ID}
		if err := s.cartRepo.CreateCart(ctx, cart); err != nil {
			return nil, appErrors.DatabaseError("Failed to create cart").WithError(err)
		}

	case models.RoleSeller:

		// new sellers stay unapproved until an admin reviews them
		seller := &models.Seller{ID: uuid.New(), AccountID: account.ID, Approved: false}
		if err := s.sellerRepo.CreateSeller(ctx, seller); err != nil {
			return nil, appErrors.DatabaseError("Failed to create seller profile").WithError(err)
		}

	case models.RoleAdmin:

		admin := &models.Admin{ID: uuid.New(), AccountID: account.ID}
		if err := s.accountRepo.CreateAdmin(ctx, admin); err != nil {
			return nil, appErrors.DatabaseError("Failed to create admin profile").WithError(err)
		}
	}

	return s.tokenResponse(account)
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {

	allowed, _, retryAfter, err := s.rateLimiter.CheckLoginRateLimit(ctx, req.Email)
	if err != nil {
		return nil, appErrors.InternalError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return nil, appErrors.TooManyRequestsError("Too many login attempts. Please try again later.").
			WithDetail(fmt.Sprintf("Retry after %d seconds", retryAfter))
	}

	account, err := s.accountRepo.GetAccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.UnauthorizedError("Invalid email or password")
		}

		return nil, appErrors.DatabaseError("Failed to look up account").WithError(err)
	}

	if !account.Active {
		return nil, appErrors.ForbiddenError("Account is deactivated")
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		return nil, appErrors.UnauthorizedError("Invalid email or password")
	}

	return s.tokenResponse(account)
}

func (s *authService) tokenResponse(account *models.Account) (*models.AuthResponse, error) {

	claims := &models.Claims{
		AccountID: account.ID,
		Email:     account.Email,
		Role:      account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, appErrors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.AuthResponse{
		AccessToken: tokenString,
		ExpiresIn:   int(time.Until(claims.ExpiresAt.Time).Seconds()),
		Account:     models.AccountSummary{ID: account.ID, Email: account.Email, Role: account.Role},
	}, nil
}
