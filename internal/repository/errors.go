package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrDuplicate is returned when a unique index rejects a write
	ErrDuplicate = errors.New("duplicate record")
	// ErrTransient is returned for write conflicts that may succeed on retry
	ErrTransient = errors.New("transient store conflict")
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
)

// translateError maps driver errors onto ErrDuplicate/ErrTransient.
// Other errors pass through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrTransient) {
		return err
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
			return fmt.Errorf("%w: %s", ErrTransient, pgErr.Message)
		}
		return err
	}

	// sqlite (tests, local runs)
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case strings.Contains(msg, "database is locked"), strings.Contains(msg, "database table is locked"):
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return err
}

// IsDuplicate reports whether err came from a unique index
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsTransient reports whether err is a retryable write conflict
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}
