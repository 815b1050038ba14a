package errors

import (
	"net/http"
	"testing"

	"lingo/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	detailed := ErrInvalidData.WithDetails("password must be at least 6 characters long")

	assert.ErrorIs(t, detailed, ErrInvalidData)
	assert.NotErrorIs(t, detailed, ErrDuplicateEmail)
	assert.Equal(t, "password must be at least 6 characters long", detailed.Details())
	assert.Empty(t, ErrInvalidData.Details(), "the predefined value is not mutated")

	wrapped := errors.Wrap(detailed, "register")
	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "INVALID_DATA", appErr.ErrorCode())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrContentNotFound.WrapMessage("lesson 7")

	assert.ErrorIs(t, err, ErrContentNotFound)
	assert.Equal(t, "lesson 7: Content not found", err.Error())
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewPersistenceError(cause, "failed to replace chat history")

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrPersistenceFailure)
	assert.NotErrorIs(t, err, ErrInternalError)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "PERSISTENCE_FAILURE", err.ErrorCode())
	assert.Equal(t, "Failed to store data", err.Message())
	assert.Equal(t, "failed to replace chat history: connection refused", err.Error())
}
