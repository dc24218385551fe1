// Package errors_test provides unit tests for the failure taxonomy.
package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/finora/bot-service/internal/domain/errors"
)

func TestIsTransport_MatchesWrapped(t *testing.T) {
	err := fmt.Errorf("call failed: %w", apperrors.NewTransportError("goal.list", errors.New("connection refused")))

	assert.True(t, apperrors.IsTransport(err))
	assert.False(t, apperrors.IsApp(err))
}

func TestGetAppError_ExposesCode(t *testing.T) {
	err := fmt.Errorf("register: %w", apperrors.NewAppError("telegram.register", "phone_in_use", "already linked"))

	assert.True(t, apperrors.IsApp(err))
	assert.False(t, apperrors.IsTransport(err))

	appErr, ok := apperrors.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, "phone_in_use", appErr.Code)
	assert.Equal(t, "phone_in_use", apperrors.AppCode(err))
}

func TestGetAppError_MissesOtherErrors(t *testing.T) {
	_, ok := apperrors.GetAppError(errors.New("plain"))
	assert.False(t, ok)
	assert.Empty(t, apperrors.AppCode(errors.New("plain")))
}

func TestIsValidation(t *testing.T) {
	err := apperrors.NewValidationError("amount", "not a positive integer")

	assert.True(t, apperrors.IsValidation(err))
	assert.False(t, apperrors.IsApp(err))
	assert.False(t, apperrors.IsTransport(err))
}
