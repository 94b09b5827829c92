package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/curio-svc/curio/internal/model"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines the data operations on users.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, skip, limit int) ([]model.User, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
}

type userRepository struct {
	db DBTX
}

// NewUserRepository creates a UserRepository backed by db.
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT id, email, hashed_password, is_active FROM users WHERE id = $1`

	user := &model.User{}
	err := r.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Email, &user.HashedPassword, &user.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, email, hashed_password, is_active FROM users WHERE email = $1`

	user := &model.User{}
	err := r.db.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.HashedPassword, &user.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// List returns up to limit users after skipping skip rows, in storage
// default order.
func (r *userRepository) List(ctx context.Context, skip, limit int) ([]model.User, error) {
	query := `SELECT id, email, hashed_password, is_active FROM users OFFSET $1 LIMIT $2`

	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.ID, &user.Email, &user.HashedPassword, &user.IsActive); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return users, nil
}

// Create inserts the user and returns it with the assigned id and the
// is_active default applied by the database.
func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	query := `INSERT INTO users (email, hashed_password) VALUES ($1, $2) RETURNING id, is_active`

	err := r.db.QueryRow(ctx, query, user.Email, user.HashedPassword).
		Scan(&user.ID, &user.IsActive)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
