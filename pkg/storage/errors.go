package storage

import (
	"errors"
	"fmt"
)

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")

	// ErrUniqueViolation is the sentinel matched by errors.Is for any
	// uniqueness-constraint violation reported by a backend. Use errors.As with
	// *UniqueViolationError to inspect the violated constraint.
	ErrUniqueViolation = errors.New("unique constraint violation")
)

// UniqueViolationError reports that a write hit a uniqueness constraint. It
// carries the name of the violated constraint so callers can translate the
// failure into a domain-specific conflict (slot already occupied, domain
// already registered, schedule already reviewed) instead of leaking the raw
// database error.
type UniqueViolationError struct {
	// Constraint is the backend's name for the violated constraint.
	Constraint string
	// Err is the underlying backend error.
	Err error
}

// Error implements the error interface.
func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("unique constraint violation on %q: %v", e.Constraint, e.Err)
}

// Unwrap returns the underlying backend error.
func (e *UniqueViolationError) Unwrap() error { return e.Err }

// Is matches the ErrUniqueViolation sentinel so callers can detect any
// uniqueness conflict without knowing the concrete type.
func (e *UniqueViolationError) Is(target error) bool { return target == ErrUniqueViolation }
