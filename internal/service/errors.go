package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"match-service/internal/repository"
	"match-service/internal/response"
	"match-service/internal/statemachine"
)

// storeError converts a repository failure into an AppError.
// AppErrors raised inside a transaction callback pass through untouched.
func storeError(action string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if repository.IsTransient(err) {
		return response.WrapAppError(response.ErrCodeTransient, "Concurrent update conflict, please retry", err)
	}
	return response.WrapAppError(response.ErrCodeInternal, "Failed to "+action, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// transitionError wraps a state machine rejection with the allowed set in Details
func transitionError(err error) error {
	var te *statemachine.TransitionError
	if !errors.As(err, &te) {
		return err
	}
	return &response.AppError{
		Code:    response.ErrCodeInvalidTransition,
		Message: fmt.Sprintf("Match cannot move from %s to %s", te.From, te.To),
		Details: te.Error(),
		Err:     te,
	}
}
