// apperr.go - Error taxonomy shared across layers

// Package apperr defines the error taxonomy shared by repositories, services
// and handlers. Handlers map these to HTTP status codes in one place.
package apperr

import (
	"errors"
	"sort"
)

// Not-found family. Each names the entity so the message can be returned as is.
var (
	ErrAdminNotFound    = newNotFound("Admin not found")
	ErrSellerNotFound   = newNotFound("Seller not found")
	ErrCustomerNotFound = newNotFound("Customer not found")
	ErrProductNotFound  = newNotFound("Product not found")
)

// ErrNotFound matches every entity not-found error via errors.Is.
var ErrNotFound = errors.New("not found")

// ErrInvalidCredentials is returned for both unknown identifiers and wrong
// passwords so callers cannot tell which check failed.
var ErrInvalidCredentials = errors.New("Invalid credentials")

type notFoundError struct{ msg string }

func newNotFound(msg string) error { return &notFoundError{msg: msg} }

func (e *notFoundError) Error() string { return e.msg }

func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }

// ConflictError reports a uniqueness violation on Field.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return "record already exists"
	}
	return e.Field + " already exists"
}

// Conflict builds a ConflictError for field.
func Conflict(field string) error {
	return &ConflictError{Field: field}
}

// ValidationError carries field level messages keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid request"
	}
	// first message in field order keeps the summary stable
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return e.Fields[keys[0]]
}

// Invalid builds a ValidationError with a single field message.
func Invalid(field, msg string) error {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// IsConflict reports whether err is a ConflictError and returns it.
func IsConflict(err error) (*ConflictError, bool) {
	var c *ConflictError
	if errors.As(err, &c) {
		return c, true
	}
	return nil, false
}

// IsValidation reports whether err is a ValidationError and returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
