package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"Insufficient funds", ErrInsufficientFunds, CodeInsufficientFunds},
		{"Already claimed", ErrAlreadyClaimed, CodeAlreadyClaimed},
		{"Already owned", ErrAlreadyOwned, CodeAlreadyOwned},
		{"Not purchasable", ErrNotPurchasable, CodeNotPurchasable},
		{"Validation", ErrValidation, CodeValidation},
		{"Duplicate account", ErrDuplicateAccount, CodeDuplicateAccount},
		{"Account not found", ErrAccountNotFound, CodeAccountNotFound},
		{"Badge not found", ErrBadgeNotFound, CodeBadgeNotFound},
		{"Questions not found", ErrQuestionsNotFound, CodeQuestionsNotFound},
		{"Generic not found", ErrNotFound, CodeNotFound},
		{"Unknown error falls back to internal", errors.New("boom"), CodeInternalServer},
		{"Wrapped error keeps its code", fmt.Errorf("context: %w", ErrAccountNotFound), CodeAccountNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ErrorCode(tt.err))
		})
	}
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError("user-1", 1000, 999)

	t.Run("Matches the sentinel", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.True(t, IsInsufficientFundsError(err))
	})

	t.Run("Reports the missing amount", func(t *testing.T) {
		var detailed *InsufficientFundsError
		assert.ErrorAs(t, err, &detailed)
		assert.Equal(t, int64(1), detailed.Missing())
	})

	t.Run("Log fields carry the details", func(t *testing.T) {
		var detailed *InsufficientFundsError
		assert.ErrorAs(t, err, &detailed)
		fields := detailed.LogFields()
		assert.Equal(t, "user-1", fields["account_id"])
		assert.Equal(t, int64(1000), fields["required"])
		assert.Equal(t, int64(999), fields["balance"])
	})

	t.Run("Message names account and amounts", func(t *testing.T) {
		assert.Contains(t, err.Error(), "user-1")
		assert.Contains(t, err.Error(), "1000")
		assert.Contains(t, err.Error(), "999")
	})
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("display name", "must not be empty")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "display name")
	assert.Contains(t, err.Error(), "must not be empty")
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrAccountNotFound))
	assert.True(t, IsNotFoundError(ErrBadgeNotFound))
	assert.True(t, IsNotFoundError(ErrQuestionsNotFound))
	assert.False(t, IsNotFoundError(ErrInsufficientFunds))
	assert.False(t, IsNotFoundError(nil))
}
