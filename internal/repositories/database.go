package repository

import (
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/vietcommerce/marketplace/internal/config"

	_ "github.com/lib/pq"
)

type Repositories struct {
	DB *sql.DB

	Account   AccountRepository
	Customer  CustomerRepository
	Seller    SellerRepository
	Category  CategoryRepository
	Product   ProductRepository
	Cart      CartRepository
	Order     OrderRepository
	Payment   PaymentRepository
	Review    ReviewRepository
	Complaint ComplaintRepository
}

func New(cfg *config.Config) (*Repositories, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN())

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repositories{
		DB:        db,
		Account:   NewAccountRepo(db),
		Customer:  NewCustomerRepo(db),
		Seller:    NewSellerRepo(db),
		Category:  NewCategoryRepo(db),
		Product:   NewProductRepo(db),
		Cart:      NewCartRepo(db),
		Order:     NewOrderRepo(db),
		Payment:   NewPaymentRepo(db),
		Complaint: NewComplaintRepo(db),
		Review:    NewReviewRepo(db),
	}, nil
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}
