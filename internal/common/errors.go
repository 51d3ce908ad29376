// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Read-path errors.
	ErrFetchFailed = errors.New("fetch failed")

	// Write-path errors.
	ErrDuplicateName = errors.New("duplicate name")
	ErrSubmitFailed  = errors.New("submit failed")

	// Session state errors.
	ErrBusy                = errors.New("operation already in progress")
	ErrNoSelection         = errors.New("no item selected")
	ErrNotInQueue          = errors.New("item not in queue")
	ErrNotInStaging        = errors.New("item not in staging")
	ErrNothingStaged       = errors.New("nothing staged")
	ErrEmptyBatch          = errors.New("batch selection is empty")
	ErrIncompleteForm      = errors.New("incomplete form")
	ErrSubcategoryMismatch = errors.New("subcategory does not belong to selected category")
	ErrUnknownSuggestion   = errors.New("unknown suggestion")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage extracts the user-facing message from an error chain,
// falling back to the raw error text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return err.Error()
}

// IsDuplicate reports whether an error chain contains a name-collision rejection.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateName)
}
