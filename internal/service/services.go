// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated data from the handler, performs domain checks (duplicate
// email, credential hashing, item nesting), and calls repository methods
// to interact with the data.
package service

import (
	"github.com/curio-svc/curio/internal/repository"
)

// Services is a container for all service instances.
type Services struct {
	Users *UserService
	Items *ItemService
}

// NewServices constructs the service container.
func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Users: NewUserService(repos.Users, repos.Items),
		Items: NewItemService(repos.Items),
	}
}
