// Package errs defines the error types returned to API clients.
//
// Every failure surfaced over HTTP is expressed as an *HTTPError with a
// machine-readable code, a human-readable message, and optionally a list
// of field-level validation errors. The global error handler serializes
// these directly to JSON.
package errs

import "strings"

// FieldError reports a validation problem on a single input field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the canonical client-facing error shape.
//
// Override tells the global error handler the message is safe to show to
// end users verbatim.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError regardless of code or status, so
// errors.Is(err, &HTTPError{}) answers "is this a client-shaped error".
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy with only Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts HTTP status text into a stable
// error code, e.g. "Bad Request" -> "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
