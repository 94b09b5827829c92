package middleware

import (
	"github.com/curio-svc/curio/internal/server"
)

// Middlewares is a container that groups all middleware components used
// by the HTTP server, so router setup receives one wired object.
type Middlewares struct {
	// Global holds middleware applied across the whole API: CORS,
	// request logging, recovery, secure headers, and the global error
	// handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger.
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components from the
// application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
