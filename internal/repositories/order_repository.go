package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vietcommerce/marketplace/internal/models"
	"github.com/vietcommerce/marketplace/internal/utils"
)

var (
	ErrEmptyCart         = errors.New("cart has no items")
	ErrInsufficientStock = errors.New("insufficient stock for cart item")
	ErrInactiveProduct   = errors.New("cart references an inactive product")
)

type OrderRepository interface {
	CheckoutCart(ctx context.Context, customerID, cartID uuid.UUID, method models.PaymentMethod) (*models.Order, error)
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) error
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

// CheckoutCart converts the cart into an order inside a single transaction.
// Cart item rows are locked with FOR UPDATE so two concurrent checkouts of
// the same cart cannot both produce an order. Stock is validated against the
// requested quantities but never decremented.
func (r *orderRepository) CheckoutCart(ctx context.Context, customerID, cartID uuid.UUID, method models.PaymentMethod) (*models.Order, error) {
	dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin checkout: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	lockQuery := `
		SELECT ci.id, ci.product_id, ci.quantity, p.name, p.price, p.stock, p.active
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at
		FOR UPDATE
	`

	rows, err := tx.QueryContext(dbCtx, lockQuery, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock cart items: %w", err)
	}

	var items []models.OrderItem

	total := decimal.Zero

	for rows.Next() {

		item := models.OrderItem{Product: &models.Product{}}

		var (
			stock  int
			active bool
		)

		err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity,
			&item.Product.Name, &item.UnitPrice, &stock, &active)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}

		if !active {
			rows.Close()
			return nil, ErrInactiveProduct
		}

		if item.Quantity > stock {
			rows.Close()
			return nil, ErrInsufficientStock
		}

		item.Product.ID = item.ProductID
		item.Product.Price = item.UnitPrice

		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))

		items = append(items, item)
	}

	rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cart items: %w", err)
	}

	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		Total:      total,
		Status:     models.OrderStatusPending,
	}

	err = tx.QueryRowContext(dbCtx,
		`INSERT INTO orders (id, customer_id, total, status, created_at) VALUES ($1, $2, $3, $4, NOW()) RETURNING created_at`,
		order.ID, order.CustomerID, order.Total, order.Status).
		Scan(&order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	for i := range items {

		items[i].ID = uuid.New()
		items[i].OrderID = order.ID

		_, err = tx.ExecContext(dbCtx,
			`INSERT INTO order_items (id, order_id, product_id, quantity, unit_price) VALUES ($1, $2, $3, $4, $5)`,
			items[i].ID, order.ID, items[i].ProductID, items[i].Quantity, items[i].UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	payment := &models.Payment{
		ID:      uuid.New(),
		OrderID: order.ID,
		Method:  method,
		Status:  models.PaymentStatusPending,
		Amount:  total,
	}

	err = tx.QueryRowContext(dbCtx,
		`INSERT INTO payments (id, order_id, method, status, amount, created_at) VALUES ($1, $2, $3, $4, $5, NOW()) RETURNING created_at`,
		payment.ID, payment.OrderID, payment.Method, payment.Status, payment.Amount).
		Scan(&payment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}

	if _, err = tx.ExecContext(dbCtx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit checkout: %w", err)
	}

	order.Items = items
	order.Payment = payment

	return order, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order := &models.Order{Payment: &models.Payment{}, Customer: &models.Customer{}}

	query := `
		SELECT o.id, o.customer_id, o.total, o.status, o.created_at,
		       p.id, p.method, p.status, p.amount, p.created_at,
		       c.account_id, c.full_name, c.phone, c.address
		FROM orders o
		JOIN payments p ON p.order_id = o.id
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, orderID).
		Scan(&order.ID, &order.CustomerID, &order.Total, &order.Status, &order.CreatedAt,
			&order.Payment.ID, &order.Payment.Method, &order.Payment.Status, &order.Payment.Amount, &order.Payment.CreatedAt,
			&order.Customer.AccountID, &order.Customer.FullName, &order.Customer.Phone, &order.Customer.Address)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	order.Payment.OrderID = order.ID
	order.Customer.ID = order.CustomerID

	itemsQuery := `
		SELECT oi.id, oi.product_id, oi.quantity, oi.unit_price, p.name, p.seller_id, s.store_name
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		JOIN sellers s ON s.id = p.seller_id
		WHERE oi.order_id = $1
	`

	rows, err := r.DB.QueryContext(dbCtx, itemsQuery, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}

	defer rows.Close()

	for rows.Next() {

		item := models.OrderItem{OrderID: order.ID, Product: &models.Product{Seller: &models.Seller{}}}

		err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity, &item.UnitPrice,
			&item.Product.Name, &item.Product.SellerID, &item.Product.Seller.StoreName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		item.Product.ID = item.ProductID
		item.Product.Seller.ID = item.Product.SellerID

		order.Items = append(order.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *orderRepository) ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Order, error) {
	return r.listOrders(ctx, `WHERE o.customer_id = $1`, customerID)
}

func (r *orderRepository) ListOrders(ctx context.Context) ([]models.Order, error) {
	return r.listOrders(ctx, ``)
}

func (r *orderRepository) listOrders(ctx context.Context, where string, args ...any) ([]models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT o.id, o.customer_id, o.total, o.status, o.created_at,
		       p.id, p.method, p.status, p.amount, p.created_at
		FROM orders o
		JOIN payments p ON p.order_id = o.id
		%s
		ORDER BY o.created_at DESC
	`, where)

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	defer rows.Close()

	var orders []models.Order

	for rows.Next() {

		order := models.Order{Payment: &models.Payment{}}

		err := rows.Scan(&order.ID, &order.CustomerID, &order.Total, &order.Status, &order.CreatedAt,
			&order.Payment.ID, &order.Payment.Method, &order.Payment.Status, &order.Payment.Amount, &order.Payment.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}

		order.Payment.OrderID = order.ID

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadOrderItems(dbCtx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// loadOrderItems fills Items for every order in one query.
func (r *orderRepository) loadOrderItems(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*models.Order, len(orders))
	ids := make([]string, 0, len(orders))

	for i := range orders {
		byID[orders[i].ID] = &orders[i]
		ids = append(ids, orders[i].ID.String())
	}

	query := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.unit_price, p.name
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1::uuid[])
		ORDER BY oi.order_id
	`

	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to list order items: %w", err)
	}

	defer rows.Close()

	for rows.Next() {

		item := models.OrderItem{Product: &models.Product{}}

		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.Product.Name)
		if err != nil {
			return fmt.Errorf("failed to scan order item: %w", err)
		}

		item.Product.ID = item.ProductID

		if order, ok := byID[item.OrderID]; ok {
			order.Items = append(order.Items, item)
		}
	}

	return rows.Err()
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx,
		`UPDATE orders SET status = $1 WHERE id = $2`, status, orderID)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
