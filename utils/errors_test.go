package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsErrorCodeUnwraps(t *testing.T) {
	err := NewNotFoundError("Post", "p1")
	wrapped := fmt.Errorf("serving feed: %w", err)

	assert.True(t, IsErrorCode(wrapped, ErrNotFound))
	assert.False(t, IsErrorCode(wrapped, ErrConflict))
	assert.False(t, IsErrorCode(errors.New("plain"), ErrNotFound))
}

func TestAppErrorMessage(t *testing.T) {
	assert.Equal(t, "Post with id p1 not found", NewNotFoundError("Post", "p1").Error())
	assert.Equal(t, "Post not found", NewNotFoundError("Post", "").Error())

	origin := errors.New("duplicate key")
	err := NewAppError(ErrConflict, "Email is already registered", origin)
	assert.Equal(t, "Email is already registered: duplicate key", err.Error())
	assert.ErrorIs(t, err, origin)
}

func TestAppErrorToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, AppErrorToHTTPStatus(ErrNotFound))
	assert.Equal(t, http.StatusUnauthorized, AppErrorToHTTPStatus(ErrUnauthorized))
	assert.Equal(t, http.StatusForbidden, AppErrorToHTTPStatus(ErrForbidden))
	assert.Equal(t, http.StatusConflict, AppErrorToHTTPStatus(ErrConflict))
	assert.Equal(t, http.StatusUnprocessableEntity, AppErrorToHTTPStatus(ErrValidation))
	assert.Equal(t, http.StatusInternalServerError, AppErrorToHTTPStatus("SOMETHING_ELSE"))
}
