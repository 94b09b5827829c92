// Package router initializes the HTTP router (using echo).
//
// It registers the middlewares and defines the API route groups, mapping
// specific paths to their corresponding handlers.
package router

import (
	"github.com/curio-svc/curio/internal/handler"
	"github.com/curio-svc/curio/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New builds the echo instance with the full middleware stack and all
// routes registered.
func New(m *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	r := echo.New()
	r.HideBanner = true

	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	r.Use(m.Global.Recover())
	r.Use(m.Global.Secure())
	r.Use(m.Global.CORS())
	r.Use(middleware.RequestID())
	r.Use(m.ContextEnhancer.EnhanceContext())
	r.Use(m.Global.RequestLogger())

	registerSystemRoutes(r, h)
	registerAPIRoutes(r, h)

	return r
}
