package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vietcommerce/marketplace/internal/api/middleware"
	"github.com/vietcommerce/marketplace/internal/models"
	service "github.com/vietcommerce/marketplace/internal/services"
	"github.com/vietcommerce/marketplace/internal/utils"
	"github.com/vietcommerce/marketplace/internal/utils/response"
)

type AuthHandler struct {
	authService service.AuthService
	validator   *validator.Validate
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService, validator: validator.New()}
}

// Register godoc
//
//	@Summary		Register a new account
//	@Description	Creates an account with the given role, its role profile (customers also get a cart) and signs the caller in.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			register	body		models.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	models.AuthResponse		"Account created"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		409		{object}	response.ErrorResponse		"Email already registered"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/auth/register [post]
func (h *AuthHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.authService.Register(r.Context(), &req)
		if err != nil {
			logger.Warn("registration failed", "email", req.Email, "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("account registered", "accountId", resp.Account.ID.String(), "role", string(resp.Account.Role))
		response.Success(w, http.StatusCreated, resp)
	}
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Verifies the credentials and returns a signed JWT with the account summary.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			login	body		models.LoginRequest	true	"Login credentials"
//	@Success		200		{object}	models.AuthResponse		"Authenticated"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Invalid email or password"
//	@Failure		403		{object}	response.ErrorResponse		"Account deactivated"
//	@Failure		429		{object}	response.ErrorResponse		"Too many login attempts"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.authService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("login failed", "email", req.Email, "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("login succeeded", "accountId", resp.Account.ID.String())
		response.Success(w, http.StatusOK, resp)
	}
}
