package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/curio-svc/curio/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pgError(code, table, column, constraint string) *pgconn.PgError {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           code,
		Message:        "driver message",
		TableName:      table,
		ColumnName:     column,
		ConstraintName: constraint,
	}
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr
}

func TestHandleError_PassesThroughHTTPError(t *testing.T) {
	orig := errs.NewNotFoundError("User not found", true, nil)
	got := HandleError(orig)
	assert.Same(t, orig, got)
}

func TestHandleError_UniqueViolation(t *testing.T) {
	err := HandleError(pgError("23505", "users", "", "users_email_key"))

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A User with this Email already exists", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleError_NotNullViolation(t *testing.T) {
	err := HandleError(pgError("23502", "items", "title", ""))

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ITEM_REQUIRED", httpErr.Code)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "title", httpErr.Errors[0].Field)
	assert.Equal(t, "is required", httpErr.Errors[0].Error)
}

func TestHandleError_ForeignKeyViolationIsServerError(t *testing.T) {
	// Unchecked owner_id inserts rely on the FK constraint; a violation
	// surfaces as an infrastructure fault, not a friendly 4xx.
	err := HandleError(pgError("23503", "items", "owner_id", "items_owner_id_fkey"))

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), httpErr.Message)
}

func TestHandleError_CheckViolation(t *testing.T) {
	err := HandleError(pgError("23514", "items", "title", "items_title_check"))

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ITEM_INVALID", httpErr.Code)
}

func TestHandleError_NoRows(t *testing.T) {
	err := HandleError(fmt.Errorf("db error: %w", pgx.ErrNoRows))

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleError_UnknownError(t *testing.T) {
	err := HandleError(errors.New("connection refused"))

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestErrCode(t *testing.T) {
	wrapped := fmt.Errorf("db error: %w", ConvertPgError(pgError("23505", "users", "", "")))
	assert.Equal(t, UniqueViolation, ErrCode(wrapped))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("users_email_key"))
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "", extractColumnForUniqueViolation("pk_users"))
}
