package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	apperrors "travel-journal/internal/shared/errors"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryStatusAndCode(t *testing.T) {
	tests := []struct {
		name     string
		err      *apperrors.AppError
		httpCode int
		code     string
	}{
		{"validation", apperrors.NewValidationError("name is required"), http.StatusBadRequest, "validation_failed"},
		{"conflict", apperrors.NewConflictError("username taken"), http.StatusBadRequest, "conflict"},
		{"authentication", apperrors.NewAuthenticationError("token missing"), http.StatusUnauthorized, "authentication_required"},
		{"authorization", apperrors.NewAuthorizationError("token expired"), http.StatusForbidden, "not_authorized"},
		{"not found", apperrors.NewNotFoundError("trip"), http.StatusNotFound, "not_found"},
		{"internal", apperrors.NewInternalError("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.httpCode, tt.err.HTTPCode)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestNotFoundNamesTheResource(t *testing.T) {
	assert.Equal(t, "trip not found", apperrors.NewNotFoundError("trip").Error())
}

func TestErrorIncludesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := apperrors.NewInternalError("failed to list trips").WithCause(cause)

	assert.Contains(t, err.Error(), "failed to list trips")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestWrapError_PassesAppErrorsThrough(t *testing.T) {
	original := apperrors.NewNotFoundError("entry")

	wrapped := apperrors.WrapError(fmt.Errorf("repo: %w", original), "failed to update entry")

	assert.Same(t, original, wrapped)
	assert.True(t, apperrors.IsNotFound(wrapped))
}

func TestWrapError_ClassifiesUnknownAsInternal(t *testing.T) {
	wrapped := apperrors.WrapError(stderrors.New("socket closed"), "failed to list trips")

	assert.Equal(t, http.StatusInternalServerError, wrapped.HTTPCode)
	assert.Contains(t, wrapped.Error(), "socket closed")
}

func TestPredicatesMatchTypesNotMessages(t *testing.T) {
	assert.True(t, apperrors.IsValidation(apperrors.NewValidationError("x")))
	assert.True(t, apperrors.IsNotFound(apperrors.NewNotFoundError("x")))
	assert.True(t, apperrors.IsNotFound(fmt.Errorf("repo: %w", apperrors.NewNotFoundError("x"))))

	assert.False(t, apperrors.IsNotFound(apperrors.NewValidationError("not found")))
	assert.False(t, apperrors.IsValidation(stderrors.New("validation")))
}
