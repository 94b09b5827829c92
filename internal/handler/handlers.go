package handler

import (
	"github.com/curio-svc/curio/internal/server"
	"github.com/curio-svc/curio/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// receives one wired object.
type Handlers struct {
	Health *HealthHandler
	Users  *UserHandler
	Items  *ItemHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		Users:  NewUserHandler(s, services.Users, services.Items),
		Items:  NewItemHandler(s, services.Items),
	}
}
