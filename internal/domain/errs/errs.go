// Package errs holds the two error kinds the domain reports to its callers.
//
//   - ValidationError: the input was malformed (blank ids, negative amounts,
//     out-of-range values, unparsable dates). Nothing was changed.
//   - NotFoundError: the input was well formed but referred to no record.
//
// Both are matched with errors.Is against ErrValidation / ErrNotFound, or
// unpacked with errors.As when the caller needs the field or the id.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + " " + e.Message
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalid builds a ValidationError for field.
func Invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// InvalidWrap is Invalid with an underlying cause kept for errors.Unwrap.
func InvalidWrap(field string, cause error, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...), Err: cause}
}

type NotFoundError struct {
	Kind string
	ID   string
	// Err is an optional use-case sentinel so handlers can tell kinds apart.
	Err error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func NotFound(kind, id string, sentinel error) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id, Err: sentinel}
}
