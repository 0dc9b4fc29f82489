package application

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrForbidden       = errors.New("operation not allowed")
	ErrRequestNotFound = errors.New("request not found")
	ErrStatusNotFound  = errors.New("status not found")
	ErrStorageDisabled = errors.New("object storage not configured")
)

// ValidationError aggregates every violated rule of a submission so the
// caller sees all problems at once instead of fixing them one by one.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) Add(field, message string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *ValidationError) HasErrors() bool { return len(e.Fields) > 0 }

// ErrOrNil lets validation code build the error unconditionally and
// only surface it when something was actually recorded.
func (e *ValidationError) ErrOrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Principal is the authenticated caller as seen by the service layer.
type Principal struct {
	UserID   uint
	Username string
	IsAdmin  bool
}
