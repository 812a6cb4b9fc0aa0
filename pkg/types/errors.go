package types

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrDonorNotFound    = errors.New("donor not found")
	ErrArticleNotFound  = errors.New("article not found")
	ErrInvalidBloodType = errors.New("invalid blood type")

	ErrValidation        = errors.New("validation failed")
	ErrGenerationFailed  = errors.New("reminder generation failed")
	ErrMalformedResponse = errors.New("malformed provider response")
)

// ValidationError maps form field names to user-facing messages.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) Add(field, msg string) {
	if _, ok := e.Fields[field]; ok {
		return
	}
	e.Fields[field] = msg
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil lets callers return a *ValidationError without tripping over a
// non-nil interface holding an empty error.
func (e *ValidationError) OrNil() error {
	if e == nil || !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
