package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotFoundErrorUnwrapsToKind(t *testing.T) {
	err := NewNotFoundError(EntityStudent, 7)

	assert.EqualError(t, err, "Student with ID '7' not found.")
	assert.True(t, errors.Is(err, ErrResourceNotFound))
	assert.False(t, errors.Is(err, ErrResourceAlreadyExists))

	var custom *CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, EntityStudent, custom.Details["entity"])
	assert.Equal(t, int64(7), custom.Details["id"])
}

func TestWrappedErrorsKeepTheirKind(t *testing.T) {
	err := fmt.Errorf("adding student: %w", NewAlreadyExistsError("already enrolled"))

	assert.ErrorIs(t, err, ErrResourceAlreadyExists)
	assert.NotErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "adding student: already enrolled", err.Error())
}

func TestCustomErrorFallsBackToUnderlyingMessage(t *testing.T) {
	err := &CustomError{Err: ErrValidationFailed}
	assert.Equal(t, "validation failed", err.Error())

	empty := &CustomError{}
	assert.Equal(t, "unknown error", empty.Error())
}
