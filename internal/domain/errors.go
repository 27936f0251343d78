package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSlotNotFound     = errors.New("slot not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrWatchNotFound    = errors.New("watch not found")
)

var (
	ErrRegistrationFailed = errors.New("registration failed")
)

var (
	ErrValidation = errors.New("validation error")
)

// RegistrationError is returned when the matching service rejects or never
// receives a registration. It matches ErrRegistrationFailed and unwraps to the cause.
type RegistrationError struct {
	Cause error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrRegistrationFailed, e.Cause)
}

func (e *RegistrationError) Is(target error) bool {
	return target == ErrRegistrationFailed
}

func (e *RegistrationError) Unwrap() error {
	return e.Cause
}
