package service

import (
	"context"
	"fmt"

	"github.com/curio-svc/curio/internal/errs"
	"github.com/curio-svc/curio/internal/model"
	"github.com/curio-svc/curio/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserWithItems pairs a user with their owned items for output shaping.
// Items are fetched explicitly, never through lazy relation traversal.
type UserWithItems struct {
	User  model.User
	Items []model.Item
}

// UserService implements user operations over the repositories.
type UserService struct {
	users repository.UserRepository
	items repository.ItemRepository
}

// NewUserService creates a UserService.
func NewUserService(users repository.UserRepository, items repository.ItemRepository) *UserService {
	return &UserService{users: users, items: items}
}

// Create registers a new user.
//
// The email is pre-checked for uniqueness and a duplicate is rejected as
// a client error before any insert. The unique index on users.email
// remains the backstop for concurrent registrations.
func (s *UserService) Create(ctx context.Context, email, password string) (*UserWithItems, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		code := "EMAIL_ALREADY_REGISTERED"
		return nil, errs.NewBadRequestError("Email already registered", true, &code, nil)
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &model.User{
		Email:          email,
		HashedPassword: hashed,
	})
	if err != nil {
		return nil, err
	}

	return &UserWithItems{User: *user, Items: []model.Item{}}, nil
}

// Get fetches a user by id with their items nested. Absence maps to a
// 404 client error.
func (s *UserService) Get(ctx context.Context, id int64) (*UserWithItems, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFoundError("User not found", true, nil)
	}

	items, err := s.items.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &UserWithItems{User: *user, Items: items}, nil
}

// List returns up to limit users after skipping skip rows, each with
// their items nested.
func (s *UserService) List(ctx context.Context, skip, limit int) ([]UserWithItems, error) {
	users, err := s.users.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	result := make([]UserWithItems, 0, len(users))
	for _, user := range users {
		items, err := s.items.ListByOwner(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, UserWithItems{User: user, Items: items})
	}

	return result, nil
}

// hashPassword hashes the plaintext credential with bcrypt before it is
// stored as users.hashed_password.
func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hashed), nil
}
