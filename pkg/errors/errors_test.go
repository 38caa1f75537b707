package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		status int
		code   string
	}{
		{"validation", Validation("Please provide all required fields", nil), http.StatusBadRequest, "validation_error"},
		{"duplicate", Duplicate("Patient with this email already exists", nil), http.StatusBadRequest, "duplicate_identity"},
		{"auth", Unauthorized("", nil), http.StatusUnauthorized, "authentication_failed"},
		{"not found", NotFound("Appointment", nil), http.StatusNotFound, "not_found"},
		{"internal", Internal(errors.New("pq: connection refused")), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.StatusCode())
			assert.Equal(t, tt.code, tt.err.Code())
		})
	}
}

func TestInternalHidesCause(t *testing.T) {
	err := Internal(errors.New("pq: password authentication failed for user \"clinic\""))

	assert.Equal(t, "Internal server error", err.PublicMessage())
	assert.Contains(t, err.Error(), "password authentication failed")
}

func TestAsWrapped(t *testing.T) {
	wrapped := fmt.Errorf("failed to get bill: %w", NotFound("Bill", nil))

	appErr := As(wrapped)
	assert.Equal(t, KindNotFound, appErr.Kind)
	assert.Equal(t, "Bill not found", appErr.PublicMessage())
	assert.True(t, IsKind(wrapped, KindNotFound))

	plain := As(errors.New("boom"))
	assert.Equal(t, KindInternal, plain.Kind)
	assert.False(t, IsKind(errors.New("boom"), KindNotFound))
}

func TestUnauthorizedDefaultMessage(t *testing.T) {
	assert.Equal(t, "Invalid credentials", Unauthorized("", nil).PublicMessage())
	assert.Equal(t, "Authentication required", Unauthorized("Authentication required", nil).PublicMessage())
}
