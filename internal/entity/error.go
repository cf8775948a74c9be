package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDataNotFound     = errors.New("data not found")
	ErrInvalidData      = errors.New("invalid data")
	ErrConfigPathNotSet = errors.New("CONFIG_PATH not set and --config flag not provided")
	ErrMailAuth         = errors.New("mail server rejected credentials")

	ErrInvalidPhone      = fmt.Errorf("%w: phone must have 10 or 11 digits", ErrInvalidData)
	ErrInvalidPostalCode = fmt.Errorf("%w: postal code must have 8 digits", ErrInvalidData)
	ErrInvalidEmail      = fmt.Errorf("%w: malformed e-mail address", ErrInvalidData)
	ErrInvalidState      = fmt.Errorf("%w: unknown state code", ErrInvalidData)
	ErrInvalidQuantity   = fmt.Errorf("%w: quantity must be a positive integer", ErrInvalidData)
	ErrInvalidPageCount  = fmt.Errorf("%w: page count must be a positive integer", ErrInvalidData)
	ErrFieldConstraint   = fmt.Errorf("%w: value violates field constraints", ErrInvalidData)
)

// MissingFieldsError lists the labels of every required form field that was
// absent or blank, in declaration order.
type MissingFieldsError struct {
	Labels []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Labels, ", ")
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrInvalidData
}

// FieldError binds a normalization failure to the form field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
