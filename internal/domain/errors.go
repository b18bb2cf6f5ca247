package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation base error for invalid input
	ErrValidation = errors.New("validation error")

	// ErrConflict base error for temporal overlap with a non-cancelled appointment
	ErrConflict = errors.New("appointment conflict")

	// ErrInvalidTransition base error for a disallowed status change
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNotFound appointment, shift range, staff, service or client does not exist
	ErrNotFound = errors.New("not found")
)

// ValidationError describes a missing or malformed field
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a field-level validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ConflictError is returned when a candidate interval overlaps an existing appointment.
// Blocking is nil when no single appointment is responsible (e.g. no staff available).
type ConflictError struct {
	Blocking *Appointment
	Message  string
}

// NewConflictError creates a conflict error naming the blocking appointment
func NewConflictError(blocking *Appointment) *ConflictError {
	msg := "time slot is already taken"
	if blocking != nil {
		msg = fmt.Sprintf("overlaps appointment %d (%s-%s)", blocking.ID,
			blocking.StartTime.Format(TimeFormat), blocking.EndTime.Format(TimeFormat))
	}
	return &ConflictError{Blocking: blocking, Message: msg}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConflict, e.Message)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InvalidTransitionError is returned for a status change not allowed by the state machine
type InvalidTransitionError struct {
	From AppointmentStatus
	To   AppointmentStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
