package response

import (
	"errors"
	"fmt"
)

// Error codes shared by services and handlers
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeInternal      = "INTERNAL_ERROR"

	// Match lifecycle
	ErrCodeInvalidState      = "INVALID_STATE"
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
	ErrCodeMatchFull         = "MATCH_FULL"
	ErrCodeAlreadyJoined     = "ALREADY_JOINED"
	ErrCodeNotParticipant    = "NOT_PARTICIPANT"

	// Invitations
	ErrCodeAlreadyParticipant  = "ALREADY_PARTICIPANT"
	ErrCodeDuplicateInvitation = "DUPLICATE_INVITATION"
	ErrCodeAlreadyResolved     = "ALREADY_RESOLVED"
	ErrCodeInvitationExpired   = "INVITATION_EXPIRED"

	// Store write conflicts; safe to retry
	ErrCodeTransient = "TRANSIENT_STORE_ERROR"
)

// AppError is the error type returned by the service layer
type AppError struct {
	Code    string
	Message string
	Details string
	Err     error
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// WrapAppError creates an AppError that keeps err as its cause
func WrapAppError(code, message string, err error) *AppError {
	appErr := NewAppError(code, message, "")
	if err != nil {
		appErr.Details = err.Error()
		appErr.Err = err
	}
	return appErr
}

// NewNotFoundError creates a NOT_FOUND error
func NewNotFoundError(message, details string) *AppError {
	return NewAppError(ErrCodeNotFound, message, details)
}

// NewValidationError creates a VALIDATION_ERROR error
func NewValidationError(message, details string) *AppError {
	return NewAppError(ErrCodeValidation, message, details)
}

// NewForbiddenError creates a FORBIDDEN error
func NewForbiddenError(message, details string) *AppError {
	return NewAppError(ErrCodeForbidden, message, details)
}

// CodeOf returns the AppError code carried by err, or an empty string.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// IsCode reports whether err is an AppError with the given code
func IsCode(err error, code string) bool {
	return CodeOf(err) == code
}
