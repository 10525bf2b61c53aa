package projects

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound signals that no project matches the requested identifier.
var ErrNotFound = errors.New("project not found")

// ValidationError reports the required create fields that were missing or
// blank. It is user-correctable and maps to a 400 at the boundary.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// StoreError wraps any underlying database failure, keeping the original
// cause for diagnosis. The repository never retries; it maps to a 500.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
