package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Services wrap these so callers can branch with errors.Is
// while still getting a human-readable message.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrState        = errors.New("operation not allowed in current state")
	ErrAvailability = errors.New("vehicle not available for the requested period")
	ErrUnauthorized = errors.New("caller is not allowed to perform this operation")
)

// ValidationError reports a missing or malformed field, or a uniqueness
// violation caught at the validation boundary.
func ValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFoundError reports an absent referenced entity.
func NotFoundError(entity string, id int32) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}

// NotFoundKeyError reports an absent entity looked up by a natural key.
func NotFoundKeyError(entity, key string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, entity, key)
}

// StateError reports an operation that is invalid for the current status.
func StateError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrState, fmt.Sprintf(format, args...))
}

// AvailabilityError reports a date-range conflict with an existing rental.
func AvailabilityError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrAvailability, fmt.Sprintf(format, args...))
}
