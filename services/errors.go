package services

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound       = errors.New("menu item not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrSessionNotFound    = errors.New("configurator session not found")
	ErrSessionClosed      = errors.New("configurator session already finished")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrAccountLocked      = errors.New("login temporarily locked")
	ErrAdminNotConfigured = errors.New("admin password not configured")
)

// ValidationError is a user-correctable problem with the submitted input.
// It never changes stored state.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationErr(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
