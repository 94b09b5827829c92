package service

import (
	"context"

	"github.com/curio-svc/curio/internal/model"
	"github.com/curio-svc/curio/internal/repository"
)

// ItemService implements item operations over the repositories.
type ItemService struct {
	items repository.ItemRepository
}

// NewItemService creates an ItemService.
func NewItemService(items repository.ItemRepository) *ItemService {
	return &ItemService{items: items}
}

// CreateForUser inserts an item owned by ownerID.
//
// The owner's existence is deliberately not checked here; the insert
// relies on the items.owner_id foreign-key constraint, and a violation
// surfaces as an infrastructure error.
func (s *ItemService) CreateForUser(ctx context.Context, ownerID int64, title string, description *string) (*model.Item, error) {
	return s.items.Create(ctx, &model.Item{
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
	})
}

// List returns up to limit items after skipping skip rows.
func (s *ItemService) List(ctx context.Context, skip, limit int) ([]model.Item, error) {
	return s.items.List(ctx, skip, limit)
}
