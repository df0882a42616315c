package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vietcommerce/marketplace/internal/api/handlers"
	"github.com/vietcommerce/marketplace/internal/api/middleware"
	"github.com/vietcommerce/marketplace/internal/cache"
	"github.com/vietcommerce/marketplace/internal/config"
	"github.com/vietcommerce/marketplace/internal/health"
	"github.com/vietcommerce/marketplace/internal/metrics"
	"github.com/vietcommerce/marketplace/internal/models"
	repository "github.com/vietcommerce/marketplace/internal/repositories"
	"github.com/vietcommerce/marketplace/internal/repositories/redis"
	service "github.com/vietcommerce/marketplace/internal/services"
	"github.com/vietcommerce/marketplace/internal/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := tracing.Init(context.Background(), cfg)
	if err != nil {
		slog.Error("error initializing tracing", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Warn("error shutting down tracing", slog.String("error", err.Error()))
		}
	}()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("database connection closed")
		}
	}()

	// Redis setup
	redisRepo, err := redis.NewRedisRepo(cfg)
	if err != nil {
		slog.Error("error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	productCache := cache.NewRedisCache(redisRepo.Client(), &cfg.Cache)

	jwtKey := []byte(cfg.Security.JWTKey)

	authService := service.NewAuthService(repos.Account, repos.Customer, repos.Seller, repos.Cart, redisRepo, jwtKey, cfg.Security.TokenTTL)
	authHandler := handlers.NewAuthHandler(authService)
	userService := service.NewUserService(repos.Customer, repos.Seller)
	userHandler := handlers.NewUserHandler(userService)
	categoryService := service.NewCategoryService(repos.Category)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productService := service.NewProductService(repos.Product, repos.Seller, repos.Category, repos.Review, productCache, cfg.Cache)
	productHandler := handlers.NewProductHandler(productService)
	cartService := service.NewCartService(repos.Cart, repos.Customer, repos.Product)
	cartHandler := handlers.NewCartHandler(cartService)
	orderService := service.NewOrderService(repos.Order, repos.Cart, repos.Customer, repos.Seller)
	orderHandler := handlers.NewOrderHandler(orderService)
	paymentService := service.NewPaymentService(repos.Payment, repos.Order, repos.Customer)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	reviewService := service.NewReviewService(repos.Review, repos.Product, repos.Customer)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	complaintService := service.NewComplaintService(repos.Complaint, repos.Order, repos.Customer)
	complaintHandler := handlers.NewComplaintHandler(complaintService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("error initializing health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env))

	customer := func(h http.Handler) http.HandlerFunc {
		return authMiddleware.Authenticate(authMiddleware.RequireRoles(h, models.RoleCustomer))
	}
	seller := func(h http.Handler) http.HandlerFunc {
		return authMiddleware.Authenticate(authMiddleware.RequireRoles(h, models.RoleSeller))
	}
	admin := func(h http.Handler) http.HandlerFunc {
		return authMiddleware.Authenticate(authMiddleware.RequireRoles(h, models.RoleAdmin))
	}

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/auth/register", authHandler.Register())
	routerMux.HandleFunc("POST /api/v1/auth/login", authHandler.Login())

	routerMux.HandleFunc("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.GetProfile()))
	routerMux.HandleFunc("PUT /api/v1/users/customer", customer(userHandler.UpdateCustomerProfile()))
	routerMux.HandleFunc("PUT /api/v1/users/seller", seller(userHandler.UpdateSellerProfile()))
	routerMux.HandleFunc("GET /api/v1/sellers", admin(userHandler.ListSellers()))
	routerMux.HandleFunc("PATCH /api/v1/sellers/{id}/approval", admin(userHandler.ApproveSeller()))

	routerMux.HandleFunc("GET /api/v1/categories", categoryHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/categories/{id}", categoryHandler.GetCategory())
	routerMux.HandleFunc("POST /api/v1/categories", admin(categoryHandler.CreateCategory()))
	routerMux.HandleFunc("PUT /api/v1/categories/{id}", admin(categoryHandler.UpdateCategory()))
	routerMux.HandleFunc("DELETE /api/v1/categories/{id}", admin(categoryHandler.DeleteCategory()))

	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/products/{id}/reviews", reviewHandler.ListReviewsByProduct())
	routerMux.HandleFunc("POST /api/v1/products", seller(productHandler.CreateProduct()))
	routerMux.HandleFunc("GET /api/v1/sellers/products", seller(productHandler.ListOwnProducts()))
	routerMux.HandleFunc("PUT /api/v1/products/{id}", seller(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/products/{id}", seller(productHandler.DeleteProduct()))

	routerMux.HandleFunc("GET /api/v1/carts", customer(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/carts/items", customer(cartHandler.AddItem()))
	routerMux.HandleFunc("PUT /api/v1/carts/items/{itemId}", customer(cartHandler.UpdateItem()))
	routerMux.HandleFunc("DELETE /api/v1/carts/items/{itemId}", customer(cartHandler.RemoveItem()))
	routerMux.HandleFunc("DELETE /api/v1/carts", customer(cartHandler.ClearCart()))

	routerMux.HandleFunc("POST /api/v1/orders", customer(orderHandler.PlaceOrder()))
	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.Authenticate(authMiddleware.RequireRoles(orderHandler.ListOrders(), models.RoleCustomer, models.RoleAdmin)))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", authMiddleware.Authenticate(authMiddleware.RequireRoles(orderHandler.GetOrder(), models.RoleCustomer, models.RoleAdmin)))
	routerMux.HandleFunc("POST /api/v1/orders/{id}/cancel", customer(orderHandler.CancelOrder()))
	routerMux.HandleFunc("PUT /api/v1/orders/{id}/status", authMiddleware.Authenticate(authMiddleware.RequireRoles(orderHandler.UpdateOrderStatus(), models.RoleSeller, models.RoleAdmin)))

	routerMux.HandleFunc("GET /api/v1/orders/{id}/payment", authMiddleware.Authenticate(authMiddleware.RequireRoles(paymentHandler.GetPaymentForOrder(), models.RoleCustomer, models.RoleAdmin)))
	routerMux.HandleFunc("GET /api/v1/payments/{id}", authMiddleware.Authenticate(authMiddleware.RequireRoles(paymentHandler.GetPayment(), models.RoleCustomer, models.RoleAdmin)))
	routerMux.HandleFunc("PATCH /api/v1/payments/{id}/status", admin(paymentHandler.UpdatePaymentStatus()))

	routerMux.HandleFunc("POST /api/v1/reviews", customer(reviewHandler.CreateReview()))
	routerMux.HandleFunc("GET /api/v1/reviews/mine", customer(reviewHandler.ListOwnReviews()))

	routerMux.HandleFunc("POST /api/v1/complaints", customer(complaintHandler.CreateComplaint()))
	routerMux.HandleFunc("GET /api/v1/complaints", authMiddleware.Authenticate(authMiddleware.RequireRoles(complaintHandler.ListComplaints(), models.RoleCustomer, models.RoleAdmin)))
	routerMux.HandleFunc("GET /api/v1/complaints/{id}", authMiddleware.Authenticate(authMiddleware.RequireRoles(complaintHandler.GetComplaint(), models.RoleCustomer, models.RoleAdmin)))
	routerMux.HandleFunc("PATCH /api/v1/complaints/{id}/status", admin(complaintHandler.UpdateComplaintStatus()))

	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = otelhttp.NewHandler(handler, "marketplace")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("server is starting", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("shutdown signal received")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("server shut down gracefully")
	}
}
