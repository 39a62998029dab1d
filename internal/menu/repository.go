package menu

import (
	"context"
	"database/sql"
	"fmt"

	"comanda-system/internal/domain"

	"github.com/google/uuid"
)

type RepositoryInterface interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	Count(ctx context.Context) (int, error)
	InsertAll(ctx context.Context, items []domain.MenuItem) error
	ReplaceAll(ctx context.Context, items []domain.MenuItem) error
}

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) RepositoryInterface {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, category, glyph, description
		FROM menu_items
		ORDER BY created_at ASC, name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select menu items: %w", err)
	}
	defer rows.Close()

	var out []domain.MenuItem
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Price, &m.Category, &m.Glyph, &m.Description); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count menu items: %w", err)
	}
	return n, nil
}

func (r *Repository) InsertAll(ctx context.Context, items []domain.MenuItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertItems(ctx, tx, items); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ReplaceAll wipes the catalog and inserts the given items in one
// transaction, so readers never observe a half-empty menu.
func (r *Repository) ReplaceAll(ctx context.Context, items []domain.MenuItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM menu_items`); err != nil {
		return fmt.Errorf("delete menu items: %w", err)
	}
	if err := insertItems(ctx, tx, items); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func insertItems(ctx context.Context, tx *sql.Tx, items []domain.MenuItem) error {
	for _, m := range items {
		id := m.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO menu_items (id, name, price, category, glyph, description, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, now())
		`, id, m.Name, m.Price, m.Category, m.Glyph, m.Description); err != nil {
			return fmt.Errorf("insert menu item %s: %w", m.Name, err)
		}
	}
	return nil
}
