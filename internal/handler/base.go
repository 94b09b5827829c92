package handler

import (
	"time"

	"github.com/curio-svc/curio/internal/middleware"
	"github.com/curio-svc/curio/internal/server"
	"github.com/curio-svc/curio/internal/validation"
	"github.com/labstack/echo/v4"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it to reach config, logger and
// the database through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint function: it receives a bound and
// validated request payload and returns the response body or an error.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// Handle wraps a typed endpoint function with binding, validation,
// structured logging and JSON response writing, and returns an
// echo.HandlerFunc ready to register on a route.
//
// A fresh *Req is allocated per request, so payload types carry no state
// between requests. Errors are returned untouched for the global error
// handler to classify and serialize.
func Handle[Req any, PReq interface {
	*Req
	validation.Validatable
}, Res any](h Handler, handler HandlerFunc[PReq, Res], status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		logger := middleware.GetLogger(c).With().
			Str("operation", "handler").
			Str("method", c.Request().Method).
			Str("route", c.Path()).
			Logger()

		logger.Info().Msg("handling request")

		req := PReq(new(Req))

		validationStart := time.Now()
		if err := validation.BindAndValidate(c, req); err != nil {
			logger.Warn().
				Err(err).
				Dur("validation_duration", time.Since(validationStart)).
				Msg("request validation failed")
			return err
		}
		validationDuration := time.Since(validationStart)

		handlerStart := time.Now()
		result, err := handler(c, req)
		handlerDuration := time.Since(handlerStart)

		if err != nil {
			logger.Error().
				Err(err).
				Dur("handler_duration", handlerDuration).
				Dur("total_duration", time.Since(start)).
				Msg("handler execution failed")
			return err
		}

		logger.Info().
			Dur("validation_duration", validationDuration).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("request completed successfully")

		return c.JSON(status, result)
	}
}

// defaultListLimit caps list responses when the client does not pass an
// explicit limit.
const defaultListLimit = 100

// ListRequest carries the offset/limit paging query parameters shared by
// the list endpoints. Pointers distinguish "absent" from an explicit 0.
type ListRequest struct {
	Skip  *int `query:"skip" validate:"omitempty,gte=0"`
	Limit *int `query:"limit" validate:"omitempty,gte=0"`
}

func (r *ListRequest) Validate() error {
	return validation.Struct(r)
}

// Paging resolves the effective skip and limit, applying the defaults
// skip=0 and limit=100.
func (r *ListRequest) Paging() (skip, limit int) {
	skip = 0
	if r.Skip != nil {
		skip = *r.Skip
	}
	limit = defaultListLimit
	if r.Limit != nil {
		limit = *r.Limit
	}
	return skip, limit
}
