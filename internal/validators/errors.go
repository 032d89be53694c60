// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every validation failure.
var ErrValidation = errors.New("validation failed")

// Failure kinds carried by *ValidationError.
var (
	ErrUnknownField     = errors.New("unknown field")
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidFieldType = errors.New("invalid field type")
	ErrFieldOutOfRange  = errors.New("field value out of range")
	ErrMalformedBody    = errors.New("malformed request body")
	ErrUnsupportedType  = errors.New("unsupported type for validation")
)

// ValidationError describes one rejected input. Field is the external name
// of the offending field and is empty for body-level failures.
type ValidationError struct {
	Field  string
	Err    error
	Reason string
}

func newValidationError(field string, kind error, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:  field,
		Err:    kind,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *ValidationError) Error() string {
	msg := e.Err.Error()
	if e.Field != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Field)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap exposes both ErrValidation and the specific failure kind.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}
