package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds = 4001
	CodeAlreadyClaimed    = 4002
	CodeAlreadyOwned      = 4003
	CodeNotPurchasable    = 4004
	CodeValidation        = 4005
	CodeDuplicateAccount  = 4006
	CodeAccountNotFound   = 4040
	CodeBadgeNotFound     = 4041
	CodeQuestionsNotFound = 4042
	CodeNotFound          = 4044

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientFunds is returned when an account cannot afford a purchase
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAlreadyClaimed is returned when the daily bonus was already claimed on the same calendar day
	ErrAlreadyClaimed = errors.New("daily bonus already claimed today")

	// ErrAlreadyOwned is returned when the account already owns the badge
	ErrAlreadyOwned = errors.New("badge already owned")

	// ErrNotPurchasable is returned when the badge has no positive price
	ErrNotPurchasable = errors.New("badge is not purchasable")

	// ErrValidation is returned for malformed input
	ErrValidation = errors.New("invalid input")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrBadgeNotFound is returned when the requested badge doesn't exist
	ErrBadgeNotFound = errors.New("badge not found")

	// ErrQuestionsNotFound is returned when the question store has no questions for a category
	ErrQuestionsNotFound = errors.New("no questions for category")

	// ErrDuplicateAccount is returned when trying to create an account that already exists
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrDatabaseConnection is returned when there's a problem talking to the store
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrAlreadyClaimed):
		return CodeAlreadyClaimed
	case errors.Is(err, ErrAlreadyOwned):
		return CodeAlreadyOwned
	case errors.Is(err, ErrNotPurchasable):
		return CodeNotPurchasable
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrDuplicateAccount):
		return CodeDuplicateAccount
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrBadgeNotFound):
		return CodeBadgeNotFound
	case errors.Is(err, ErrQuestionsNotFound):
		return CodeQuestionsNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for a failed purchase
type InsufficientFundsError struct {
	AccountID string
	Required  int64
	Balance   int64
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for account %s: required %d coins, available %d",
		e.AccountID, e.Required, e.Balance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// Missing returns how many more coins the account needs
func (e *InsufficientFundsError) Missing() int64 {
	return e.Required - e.Balance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"account_id": e.AccountID,
		"required":   e.Required,
		"balance":    e.Balance,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(accountID string, required, balance int64) error {
	return &InsufficientFundsError{
		AccountID: accountID,
		Required:  required,
		Balance:   balance,
	}
}

// ValidationError carries the field that failed validation
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a new detailed validation error
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsAccountNotFoundError checks if the error is an account not found error
func IsAccountNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrBadgeNotFound) ||
		errors.Is(err, ErrQuestionsNotFound)
}
