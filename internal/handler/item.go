package handler

import (
	"github.com/curio-svc/curio/internal/model"
	"github.com/curio-svc/curio/internal/server"
	"github.com/curio-svc/curio/internal/service"
	"github.com/labstack/echo/v4"
)

// ListItemsRequest carries paging for the item list endpoint.
type ListItemsRequest struct {
	ListRequest
}

// ItemResponse is the read shape for an item.
type ItemResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	OwnerID     int64   `json:"owner_id"`
}

// NewItemResponse adapts a persistence-layer item into the output shape.
func NewItemResponse(item model.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		OwnerID:     item.OwnerID,
	}
}

// ItemHandler serves the /items endpoints.
type ItemHandler struct {
	Handler
	items *service.ItemService
}

// NewItemHandler constructs an ItemHandler.
func NewItemHandler(s *server.Server, items *service.ItemService) *ItemHandler {
	return &ItemHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

// ListItems handles GET /items/.
func (h *ItemHandler) ListItems(c echo.Context, req *ListItemsRequest) ([]ItemResponse, error) {
	skip, limit := req.Paging()

	items, err := h.items.List(c.Request().Context(), skip, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewItemResponse(item))
	}
	return responses, nil
}
