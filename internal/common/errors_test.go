package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"validation", Validationf("amount must be positive"), ErrValidation},
		{"permission", Permissionf("only admins can do that"), ErrPermission},
		{"not found", NotFoundf("user %s not found", "42"), ErrNotFound},
		{"conflict", Conflictf("email already registered"), ErrConflict},
		{"authentication", Authenticationf("bad credentials"), ErrAuthentication},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.ErrorIs(t, tt.err, tt.sentinel)

			// Each error belongs to exactly one category.
			for _, other := range []error{ErrValidation, ErrPermission, ErrNotFound, ErrConflict, ErrAuthentication} {
				if other == tt.sentinel {
					continue
				}
				assert.NotErrorIs(t, tt.err, other)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := NotFoundf("user %s not found", "7")
	assert.Equal(t, "user 7 not found", err.Error())

	wrapped := fmt.Errorf("updating task: %w", err)
	assert.ErrorIs(t, wrapped, ErrNotFound)

	var appErr *Error
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "user 7 not found", appErr.Message)
}
