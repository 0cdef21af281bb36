package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"auth", NewAuthError("no token", nil), http.StatusUnauthorized},
		{"forbidden", NewForbiddenError("not yours", nil), http.StatusForbidden},
		{"not found", NewNotFoundError("missing", nil), http.StatusNotFound},
		{"conflict", NewConflictError("exists", nil), http.StatusConflict},
		{"validation", NewValidationError("bad field", nil), http.StatusBadRequest},
		{"bad request", NewBadRequestError("bad body", nil), http.StatusBadRequest},
		{"database", NewDatabaseError("down", nil), http.StatusInternalServerError},
		{"config", NewConfigError("missing var", nil), http.StatusInternalServerError},
		{"internal", NewInternalError("boom", nil), http.StatusInternalServerError},
		{"migration", NewMigrationError("bad ddl", nil), http.StatusInternalServerError},
		{"unknown", NewAppError(UnknownError, "?", nil), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestErrorAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseError("failed to query", cause)

	assert.Equal(t, "failed to query: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewNotFoundError("recipe not found", nil)
	assert.Equal(t, "recipe not found", bare.Error())
}

func TestToResponseHidesCause(t *testing.T) {
	err := NewDatabaseError("failed to query", errors.New("password=hunter2 rejected"))
	resp := err.ToResponse()
	assert.Equal(t, "failed to query", resp.Error)
}

func TestFromError(t *testing.T) {
	appErr, ok := FromError(NewAuthError("no token", nil))
	require.True(t, ok)
	assert.Equal(t, AuthError, appErr.Type)

	// Wrapped AppErrors are still recognized.
	wrapped := fmt.Errorf("handler: %w", NewConflictError("exists", nil))
	appErr, ok = FromError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ConflictError, appErr.Type)

	_, ok = FromError(errors.New("plain"))
	assert.False(t, ok)

	_, ok = FromError(nil)
	assert.False(t, ok)
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("x", nil)))
	assert.True(t, IsAuthError(NewAuthError("x", nil)))
	assert.True(t, IsForbidden(NewForbiddenError("x", nil)))
	assert.True(t, IsValidationError(NewValidationError("x", nil)))
	assert.True(t, IsConflictError(NewConflictError("x", nil)))

	assert.False(t, IsNotFound(NewConflictError("x", nil)))
	assert.False(t, IsForbidden(NewAuthError("x", nil)))
	assert.False(t, IsAuthError(errors.New("plain")))
}
