package errs

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	err := NewError(ErrUserNotFound)
	require.NotNil(t, err)
	assert.Equal(t, ErrUserNotFound, err.Code)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.NotEmpty(t, err.Message)
}

func TestNewErrorUnknownCodeFallsBack(t *testing.T) {
	err := NewError(999999)
	require.NotNil(t, err)
	assert.Equal(t, ErrUnknown, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
}

func TestNewValidationError(t *testing.T) {
	fields := []FieldError{
		{Field: "email", Message: "Invalid email address"},
	}

	err := NewValidationError(fields)
	require.NotNil(t, err)
	assert.Equal(t, ErrValidationFailed, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, fields, err.Details)
}

func TestCustomErrorImplementsError(t *testing.T) {
	var err error = CustomError{Code: ErrForbidden, Message: "nope", Status: http.StatusForbidden}
	assert.Contains(t, err.Error(), "nope")
}
