package repository

import (
	"github.com/curio-svc/curio/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users UserRepository
	Items ItemRepository
}

// NewRepositories constructs the repository container over the shared
// connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users: NewUserRepository(s.DB.Pool),
		Items: NewItemRepository(s.DB.Pool),
	}
}
