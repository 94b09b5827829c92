// Package validation contains the logic for validating request data.
//
// It uses the validator library to enforce rules (like required fields
// or email formats) defined in struct tags and extracts validation
// errors into a format the client can understand.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/curio-svc/curio/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate themselves, typically by running validator.Struct over their
// `validate` tags.
type Validatable interface {
	Validate() error
}

// validate is the shared validator instance. It is safe for concurrent use.
var validate = validator.New()

// Struct runs tag-based validation over v. Request types call this from
// their Validate method.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds the request (body, path and query params) into
// payload and validates it.
//
// payload must be a pointer so echo's Bind can populate it. On bind or
// validation failure a 400 *errs.HTTPError is returned, carrying
// field-level errors when available.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		message := "Malformed request"
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			if msg, ok := echoErr.Message.(string); ok && msg != "" {
				message = msg
			}
		}
		return errs.NewBadRequestError(message, false, nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

// extractValidationError converts validator.ValidationErrors into
// client-friendly field errors.
func extractValidationError(err error) (string, []errs.FieldError) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Validation failed", []errs.FieldError{
			{Field: "request", Error: err.Error()},
		}
	}

	var fieldErrors []errs.FieldError
	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field())
		var msg string

		switch fieldErr.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if fieldErr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fieldErr.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fieldErr.Param())
			}

		case "max":
			if fieldErr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fieldErr.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fieldErr.Param())
			}

		case "gte":
			msg = fmt.Sprintf("must be %s or greater", fieldErr.Param())

		case "email":
			msg = "must be a valid email address"

		default:
			if fieldErr.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, fieldErr.Tag(), fieldErr.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, fieldErr.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
