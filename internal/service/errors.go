package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain errors. Client-facing failures are wrapped in a *ValidationError.
var (
	ErrInvalidPassword  = errors.New("invalid password")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidToken     = errors.New("invalid token")
	ErrDuplicateEmail   = errors.New("duplicate email")
	ErrInvalidInput     = errors.New("invalid input")
)

// NonFieldErrors is the key used for errors not tied to a single field.
const NonFieldErrors = "non_field_errors"

const (
	msgDuplicateEmail     = "employee with this email already exists."
	msgInvalidCredentials = "Unable to authenticate with provided credentials"
	msgPasswordTooLong    = "Ensure this field has no more than 72 bytes."
)

// FieldErrors maps a request field name to its messages.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

// ValidationError is returned for any failure the caller can fix by changing the request.
type ValidationError struct {
	Fields FieldErrors
	Err    error
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
	}
	return fmt.Sprintf("%v: %s", e.Err, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error { return e.Err }

func fieldError(cause error, field, msg string) *ValidationError {
	fe := FieldErrors{}
	fe.Add(field, msg)
	return &ValidationError{Fields: fe, Err: cause}
}

func invalidCredentials(cause error) *ValidationError {
	return fieldError(cause, NonFieldErrors, msgInvalidCredentials)
}
