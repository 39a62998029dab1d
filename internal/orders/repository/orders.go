package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"comanda-system/internal/domain"

	"github.com/google/uuid"
)

type OrdersRepositoryInterface interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, to domain.Status) (old domain.Status, orderNumber int64, err error)
	DeleteOrder(ctx context.Context, orderID string) (orderNumber int64, err error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

type OrdersRepository struct {
	db *sql.DB
}

func NewOrdersRepository(db *sql.DB) OrdersRepositoryInterface {
	return &OrdersRepository{db: db}
}

// CreateOrder persists the order with status pendente and the next order
// number. The counter bump, the order row, its items and the status log
// entry commit in one transaction, so concurrent creators each observe a
// distinct, strictly increasing number and deletions never free a number
// for reuse.
func (r *OrdersRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Order{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var number int64
	if err := tx.QueryRowContext(ctx, `
		UPDATE order_counter SET value = value + 1 RETURNING value
	`).Scan(&number); err != nil {
		return domain.Order{}, fmt.Errorf("bump order counter: %w", err)
	}

	order.ID = uuid.NewString()
	order.OrderNumber = number
	order.Status = domain.StatusPending

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, order_number, customer_name, total, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING created_at
	`, order.ID, order.OrderNumber, order.CustomerName, order.Total, order.Status).Scan(&order.CreatedAt); err != nil {
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}

	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, name, price, quantity)
			VALUES ($1, $2, $3, $4, $5)
		`, order.ID, item.MenuItemID, item.Name, item.Price, item.Quantity); err != nil {
			return domain.Order{}, fmt.Errorf("insert order item %s: %w", item.Name, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO order_status_log (order_id, status, changed_at)
		VALUES ($1, $2, now())
	`, order.ID, order.Status); err != nil {
		return domain.Order{}, fmt.Errorf("insert status log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Order{}, fmt.Errorf("commit transaction: %w", err)
	}
	return order, nil
}

// UpdateStatus moves an order along the lifecycle. The current status is
// read under a row lock so two kitchen terminals acting on the same order
// serialize; illegal edges roll back with ErrInvalidTransition.
func (r *OrdersRepository) UpdateStatus(ctx context.Context, orderID string, to domain.Status) (domain.Status, int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var old string
	var number int64
	err = tx.QueryRowContext(ctx, `
		SELECT status, order_number FROM orders WHERE id = $1 FOR UPDATE
	`, orderID).Scan(&old, &number)
	if errors.Is(err, sql.ErrNoRows) {
		return "", 0, domain.ErrNotFound
	}
	if err != nil {
		return "", 0, fmt.Errorf("select order for update: %w", err)
	}

	if err := domain.ValidateTransition(domain.Status(old), to); err != nil {
		return "", 0, err
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE orders SET status = $2, updated_at = now() WHERE id = $1
	`, orderID, to); err != nil {
		return "", 0, fmt.Errorf("update order status: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO order_status_log (order_id, status, changed_at)
		VALUES ($1, $2, now())
	`, orderID, to); err != nil {
		return "", 0, fmt.Errorf("insert status log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", 0, fmt.Errorf("commit transaction: %w", err)
	}
	return domain.Status(old), number, nil
}

// DeleteOrder removes the order permanently; items and log entries go with
// it via cascade. Used on pickup instead of a terminal transition.
func (r *OrdersRepository) DeleteOrder(ctx context.Context, orderID string) (int64, error) {
	var number int64
	err := r.db.QueryRowContext(ctx, `
		DELETE FROM orders WHERE id = $1 RETURNING order_number
	`, orderID).Scan(&number)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("delete order: %w", err)
	}
	return number, nil
}

// ListOrders returns every live order, oldest first. The explicit sort on
// order_number is what the kitchen queue's oldest-first expectation rests
// on; storage order is never assumed. Orders and items are read in one
// repeatable-read transaction so a concurrent delete between the two
// queries cannot produce an order with its items missing.
func (r *OrdersRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, `
		SELECT id, order_number, customer_name, total, status, created_at
		FROM orders
		ORDER BY order_number ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var out []domain.Order
	index := make(map[string]int)
	for rows.Next() {
		var o domain.Order
		var status string
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.Total, &status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Status = domain.Status(status)
		index[o.ID] = len(out)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	itemRows, err := tx.QueryContext(ctx, `
		SELECT order_id, menu_item_id, name, price, quantity
		FROM order_items
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID string
		var item domain.LineItem
		if err := itemRows.Scan(&orderID, &item.MenuItemID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if i, ok := index[orderID]; ok {
			out[i].Items = append(out[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return out, nil
}
