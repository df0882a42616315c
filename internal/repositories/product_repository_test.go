package repository_test

import (
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vietcommerce/marketplace/internal/models"
	repository "github.com/vietcommerce/marketplace/internal/repositories"
)

func setupProductRepoTest(t *testing.T) (repository.ProductRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewProductRepo(db), mock
}

func TestCreateProduct(t *testing.T) {
	repo, mock := setupProductRepoTest(t)
	ctx := t.Context()

	product := &models.Product{
		ID:          uuid.New(),
		SellerID:    uuid.New(),
		CategoryID:  uuid.New(),
		Name:        "Mechanical Keyboard",
		Description: "Tenkeyless, hot swappable",
		Price:       decimal.RequireFromString("125.50"),
		Stock:       40,
		Images:      []string{"https://img.example.com/kb-1.jpg"},
		Active:      true,
	}

	images, err := json.Marshal(product.Images)
	require.NoError(t, err)

	insertSQL := `INSERT INTO products`

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(insertSQL).
			WithArgs(product.ID, product.SellerID, product.CategoryID, product.Name, product.Description,
				product.Price, product.Stock, images, product.Active).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

		err := repo.CreateProduct(ctx, product)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetProductByID(t *testing.T) {
	repo, mock := setupProductRepoTest(t)
	ctx := t.Context()

	productID := uuid.New()
	sellerID := uuid.New()
	categoryID := uuid.New()
	now := time.Now()

	selectSQL := `SELECT p.id, p.seller_id, p.category_id, p.name`

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(selectSQL).
			WithArgs(productID).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "seller_id", "category_id", "name", "description", "price", "stock", "images", "active", "created_at",
				"c.name", "store_name", "approved",
			}).AddRow(productID, sellerID, categoryID, "Mechanical Keyboard", "Tenkeyless", "125.50", 40,
				[]byte(`["https://img.example.com/kb-1.jpg"]`), true, now, "Peripherals", "KeebShop", true))

		product, err := repo.GetProductByID(ctx, productID)

		require.NoError(t, err)
		assert.Equal(t, "125.5", product.Price.String())
		assert.Equal(t, []string{"https://img.example.com/kb-1.jpg"}, product.Images)
		require.NotNil(t, product.Category)
		assert.Equal(t, "Peripherals", product.Category.Name)
		require.NotNil(t, product.Seller)
		assert.Equal(t, "KeebShop", product.Seller.StoreName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		mock.ExpectQuery(selectSQL).
			WithArgs(productID).
			WillReturnError(sql.ErrNoRows)

		product, err := repo.GetProductByID(ctx, productID)

		assert.Nil(t, product)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListProducts(t *testing.T) {
	repo, mock := setupProductRepoTest(t)
	ctx := t.Context()

	productID := uuid.New()
	sellerID := uuid.New()
	categoryID := uuid.New()
	now := time.Now()

	countSQL := `SELECT COUNT\(\*\) FROM products p`
	listSQL := `SELECT p.id, p.seller_id, p.category_id, p.name`

	t.Run("Success - Search Filter", func(t *testing.T) {
		filter := &models.ProductFilter{Search: "keyboard", Page: 1, PageSize: 20}

		mock.ExpectQuery(countSQL).
			WithArgs("%keyboard%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		mock.ExpectQuery(listSQL).
			WithArgs("%keyboard%", 20, 0).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "seller_id", "category_id", "name", "description", "price", "stock", "images", "created_at",
				"c.name", "store_name",
			}).AddRow(productID, sellerID, categoryID, "Mechanical Keyboard", "", "125.50", 40, nil, now, "Peripherals", "KeebShop"))

		products, total, err := repo.ListProducts(ctx, filter)

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, products, 1)
		assert.True(t, products[0].Active)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - No Matches", func(t *testing.T) {
		filter := &models.ProductFilter{Page: 2, PageSize: 10}

		mock.ExpectQuery(countSQL).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery(listSQL).
			WithArgs(10, 10).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "seller_id", "category_id", "name", "description", "price", "stock", "images", "created_at",
				"c.name", "store_name",
			}))

		products, total, err := repo.ListProducts(ctx, filter)

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, products)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeactivateProduct(t *testing.T) {
	repo, mock := setupProductRepoTest(t)
	ctx := t.Context()

	productID := uuid.New()
	deactivateSQL := regexp.QuoteMeta(`UPDATE products SET active = FALSE WHERE id = $1`)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(deactivateSQL).
			WithArgs(productID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeactivateProduct(ctx, productID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unknown Product", func(t *testing.T) {
		mock.ExpectExec(deactivateSQL).
			WithArgs(productID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeactivateProduct(ctx, productID), sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
