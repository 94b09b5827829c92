package repository

import (
	"context"
	"fmt"

	"github.com/curio-svc/curio/internal/model"
	"github.com/jackc/pgx/v5"
)

// ItemRepository defines the data operations on items.
type ItemRepository interface {
	List(ctx context.Context, skip, limit int) ([]model.Item, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Item, error)
	Create(ctx context.Context, item *model.Item) (*model.Item, error)
}

type itemRepository struct {
	db DBTX
}

// NewItemRepository creates an ItemRepository backed by db.
func NewItemRepository(db DBTX) ItemRepository {
	return &itemRepository{db: db}
}

// List returns up to limit items after skipping skip rows, in storage
// default order.
func (r *itemRepository) List(ctx context.Context, skip, limit int) ([]model.Item, error) {
	query := `SELECT id, title, description, owner_id FROM items OFFSET $1 LIMIT $2`

	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// ListByOwner returns every item owned by ownerID. This is the explicit
// replacement for lazy relationship traversal: callers fetch a user's
// items exactly when shaping output.
func (r *itemRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Item, error) {
	query := `SELECT id, title, description, owner_id FROM items WHERE owner_id = $1`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// Create inserts the item and returns it with the assigned id.
//
// The owner reference is not verified here; the foreign-key constraint on
// items.owner_id is the only guard, and a violation propagates as a
// driver error.
func (r *itemRepository) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	query := `INSERT INTO items (title, description, owner_id) VALUES ($1, $2, $3) RETURNING id`

	err := r.db.QueryRow(ctx, query, item.Title, item.Description, item.OwnerID).
		Scan(&item.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func scanItems(rows pgx.Rows) ([]model.Item, error) {
	items := []model.Item{}
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.OwnerID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}
