package handler

import (
	"github.com/curio-svc/curio/internal/server"
	"github.com/curio-svc/curio/internal/service"
	"github.com/curio-svc/curio/internal/validation"
	"github.com/labstack/echo/v4"
)

// CreateUserRequest is the payload for registering a user. The password
// is write-only: it never appears in any response shape.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *CreateUserRequest) Validate() error {
	return validation.Struct(r)
}

// GetUserRequest binds the user id path parameter. The id is not
// range-checked: any id without a matching row, zero included, resolves
// to a 404 through the lookup.
type GetUserRequest struct {
	UserID int64 `param:"user_id"`
}

func (r *GetUserRequest) Validate() error {
	return validation.Struct(r)
}

// ListUsersRequest carries paging for the user list endpoint.
type ListUsersRequest struct {
	ListRequest
}

// UserResponse is the read shape for a user: server-assigned fields plus
// nested items, never the stored credential.
type UserResponse struct {
	ID       int64          `json:"id"`
	Email    string         `json:"email"`
	IsActive bool           `json:"is_active"`
	Items    []ItemResponse `json:"items"`
}

// NewUserResponse adapts a persistence-layer user (with its items) into
// the output shape, field by field.
func NewUserResponse(u service.UserWithItems) UserResponse {
	items := make([]ItemResponse, 0, len(u.Items))
	for _, item := range u.Items {
		items = append(items, NewItemResponse(item))
	}

	return UserResponse{
		ID:       u.User.ID,
		Email:    u.User.Email,
		IsActive: u.User.IsActive,
		Items:    items,
	}
}

// UserHandler serves the /users endpoints.
type UserHandler struct {
	Handler
	users *service.UserService
	items *service.ItemService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(s *server.Server, users *service.UserService, items *service.ItemService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
		items:   items,
	}
}

// CreateUser handles POST /users/. A duplicate email is rejected with a
// 400 before any insert.
func (h *UserHandler) CreateUser(c echo.Context, req *CreateUserRequest) (UserResponse, error) {
	user, err := h.users.Create(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return UserResponse{}, err
	}
	return NewUserResponse(*user), nil
}

// GetUser handles GET /users/:user_id. Missing users map to 404.
func (h *UserHandler) GetUser(c echo.Context, req *GetUserRequest) (UserResponse, error) {
	user, err := h.users.Get(c.Request().Context(), req.UserID)
	if err != nil {
		return UserResponse{}, err
	}
	return NewUserResponse(*user), nil
}

// ListUsers handles GET /users/.
func (h *UserHandler) ListUsers(c echo.Context, req *ListUsersRequest) ([]UserResponse, error) {
	skip, limit := req.Paging()

	users, err := h.users.List(c.Request().Context(), skip, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, NewUserResponse(user))
	}
	return responses, nil
}

// CreateItemRequest is the payload for creating an item under a user.
// The owner comes from the path, never from the body.
type CreateItemRequest struct {
	UserID      int64   `json:"-" param:"user_id"`
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
}

func (r *CreateItemRequest) Validate() error {
	return validation.Struct(r)
}

// CreateUserItem handles POST /users/:user_id/items/.
//
// The owner's existence is not pre-checked; a dangling owner id trips the
// foreign-key constraint and surfaces as a server error.
func (h *UserHandler) CreateUserItem(c echo.Context, req *CreateItemRequest) (ItemResponse, error) {
	item, err := h.items.CreateForUser(c.Request().Context(), req.UserID, req.Title, req.Description)
	if err != nil {
		return ItemResponse{}, err
	}
	return NewItemResponse(*item), nil
}
