package core

import (
	"errors"
	"fmt"
)

// ValidationError names the offending field so the client can surface it
// next to the input. Always recoverable by resubmitting corrected input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field '%s': %s", e.Field, e.Reason)
}

// InvalidWorkTypeError is returned when the work type discriminator is not one
// of the known disciplines.
type InvalidWorkTypeError struct {
	Value string
}

func (e *InvalidWorkTypeError) Error() string {
	return fmt.Sprintf("unrecognized work type %q", e.Value)
}

type NotFoundError struct {
	Resource string
	ID       any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}

// InvalidStateError marks input that is well-formed but contextually invalid,
// e.g. an end time before the stored start time.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return e.Reason
}

// ErrAlreadyClockedIn is raised when a clock-in would create a second open
// timesheet for the same user.
var ErrAlreadyClockedIn = &InvalidStateError{Reason: "user already has an open timesheet"}

// TransactionError wraps a failure inside a multi-row atomic operation. The
// whole unit rolled back; the caller may retry the operation as a whole.
type TransactionError struct {
	Op  string
	Err error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var ve *ValidationError
	var we *InvalidWorkTypeError
	return errors.As(err, &ve) || errors.As(err, &we)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsInvalidState(err error) bool {
	var is *InvalidStateError
	return errors.As(err, &is)
}

// wrapTxError passes domain errors through untouched and wraps anything else
// (driver failures, constraint violations) as a TransactionError.
func wrapTxError(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsValidation(err) || IsNotFound(err) || IsInvalidState(err) {
		return err
	}
	return &TransactionError{Op: op, Err: err}
}
