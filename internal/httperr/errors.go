package httperr

import (
	"errors"
	"fmt"
)

// ValidationError carries every violated field with its messages.
// Fields are reported in the order they were added.
type ValidationError struct {
	Fields map[string][]string
	order  []string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	if _, ok := e.Fields[field]; !ok {
		e.order = append(e.order, field)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Set replaces every message recorded for field. A field seen before keeps
// its position.
func (e *ValidationError) Set(field, message string) {
	if _, ok := e.Fields[field]; ok {
		e.Fields[field] = []string{message}
		return
	}
	e.Add(field, message)
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// Message is the first message followed by a count of the remaining ones.
func (e *ValidationError) Message() string {
	if e.Empty() {
		return "The given data was invalid."
	}

	total := 0
	for _, msgs := range e.Fields {
		total += len(msgs)
	}

	first := e.Fields[e.firstField()][0]
	switch rest := total - 1; rest {
	case 0:
		return first
	case 1:
		return first + " (and 1 more error)"
	default:
		return fmt.Sprintf("%s (and %d more errors)", first, rest)
	}
}

func (e *ValidationError) firstField() string {
	if len(e.order) > 0 {
		return e.order[0]
	}
	for f := range e.Fields {
		return f
	}
	return ""
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Message()
}

// OrNil returns nil when no field was rejected.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	return e.Resource + " not found"
}

func ErrNotFound(resource string) error {
	return NotFoundError{Resource: resource}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// ReferentialIntegrityError is raised when the storage engine rejects a
// foreign key that referenced a missing row.
type ReferentialIntegrityError struct {
	Field string
	Err   error
}

func (e ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("foreign key violation on %s: %v", e.Field, e.Err)
}

func (e ReferentialIntegrityError) Unwrap() error {
	return e.Err
}
