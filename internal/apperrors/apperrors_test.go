package apperrors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"bodima/internal/apperrors"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err    *apperrors.Error
		status int
	}{
		{apperrors.NewValidation("bad input"), http.StatusBadRequest},
		{apperrors.NewConflict("duplicate"), http.StatusBadRequest},
		{apperrors.NewAuth("bad credentials"), http.StatusUnauthorized},
		{apperrors.NewUnauthenticated("no token"), http.StatusUnauthorized},
		{apperrors.NewInvalidToken("bad token", nil), http.StatusForbidden},
		{apperrors.NewNotFound("missing"), http.StatusNotFound},
		{apperrors.NewInternal("boom", nil), http.StatusInternalServerError},
		{apperrors.NewConfig("missing secret"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status(), tc.err.Message)
	}
}

func TestKindOf(t *testing.T) {
	notFound := apperrors.NewNotFound("missing")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(notFound))
	assert.True(t, apperrors.IsNotFound(notFound))

	// Wrapped application errors are still recognized.
	wrapped := fmt.Errorf("lookup failed: %w", notFound)
	assert.True(t, apperrors.IsNotFound(wrapped))

	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(fmt.Errorf("plain")))
	assert.False(t, apperrors.IsNotFound(nil))
}

func TestErrorMessage(t *testing.T) {
	plain := apperrors.NewValidation("All fields are required!")
	assert.EqualError(t, plain, "All fields are required!")

	withCause := apperrors.NewInternal("failed to create user", fmt.Errorf("connection refused"))
	assert.EqualError(t, withCause, "failed to create user: connection refused")
	assert.EqualError(t, withCause.Unwrap(), "connection refused")
}
