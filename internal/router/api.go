package router

import (
	"net/http"

	"github.com/curio-svc/curio/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes maps the business endpoints onto their handlers.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	r.POST("/users/", handler.Handle(h.Users.Handler, h.Users.CreateUser, http.StatusCreated))
	r.GET("/users/", handler.Handle(h.Users.Handler, h.Users.ListUsers, http.StatusOK))
	r.GET("/users/:user_id", handler.Handle(h.Users.Handler, h.Users.GetUser, http.StatusOK))
	r.POST("/users/:user_id/items/", handler.Handle(h.Users.Handler, h.Users.CreateUserItem, http.StatusCreated))

	r.GET("/items/", handler.Handle(h.Items.Handler, h.Items.ListItems, http.StatusOK))
}
