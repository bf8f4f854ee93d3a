package storage

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrDuplicateKey is returned when inserting a key that is already stored
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrCapacityExhausted is returned when a growable store has used every slot it can address
	ErrCapacityExhausted = errors.New("capacity exhausted")

	// ErrKeyNotFound is returned when a lookup misses
	ErrKeyNotFound = errors.New("key not found")

	// ErrAxisOutOfRange is returned when a key axis does not fit in 32 bits
	ErrAxisOutOfRange = errors.New("axis out of 32-bit range")
)

// Error wraps errors with operation context
type Error struct {
	Op  string // Operation name
	Err error  // Underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("storage: %v", e.Err)
	}
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
