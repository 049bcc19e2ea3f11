// Package domain defines the catalog's core types, validators and error
// taxonomy.
package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DuplicateNameCode is the stable machine code carried by duplicate-name
// conflicts across transports.
const DuplicateNameCode = "DUPLICATE_NAME"

// ValidationError is returned when a submitted field violates a rule.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid product: field=%s, reason=%s", e.Field, e.Reason)
}

// Is allows error type checking with errors.Is()
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// DuplicateNameError is returned when another live record already owns the
// case-folded form of a name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate name: a product named %q already exists", e.Name)
}

// Is allows error type checking with errors.Is()
func (e *DuplicateNameError) Is(target error) bool {
	_, ok := target.(*DuplicateNameError)
	return ok
}

// NotFoundError is returned when the referenced product id does not exist.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product not found: id=%s", e.ID)
}

// Is allows error type checking with errors.Is()
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// InvalidRangeError is returned when a list query sets a minimum price
// above the maximum.
type InvalidRangeError struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid price range: min_precio %s exceeds max_precio %s", e.Min, e.Max)
}

// Is allows error type checking with errors.Is()
func (e *InvalidRangeError) Is(target error) bool {
	_, ok := target.(*InvalidRangeError)
	return ok
}

// Helper constructors

// NewValidationError creates a new ValidationError
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NewDuplicateNameError creates a new DuplicateNameError
func NewDuplicateNameError(name string) error {
	return &DuplicateNameError{Name: name}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(id uuid.UUID) error {
	return &NotFoundError{ID: id}
}

// NewInvalidRangeError creates a new InvalidRangeError
func NewInvalidRangeError(min, max decimal.Decimal) error {
	return &InvalidRangeError{Min: min, Max: max}
}

// Type assertion helpers for use with errors.As()

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDuplicateNameError checks if an error is a DuplicateNameError
func IsDuplicateNameError(err error) bool {
	var de *DuplicateNameError
	return errors.As(err, &de)
}

// IsNotFoundError checks if an error is a NotFoundError
func IsNotFoundError(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsInvalidRangeError checks if an error is an InvalidRangeError
func IsInvalidRangeError(err error) bool {
	var ir *InvalidRangeError
	return errors.As(err, &ir)
}
