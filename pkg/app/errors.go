package app

import "fmt"

// ValidationError rejects empty or whitespace-only input. The model is left
// unchanged when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("app: invalid %s: %s", e.Field, e.Reason)
}

// ConflictError rejects a list name already in use, compared
// case-insensitively.
type ConflictError struct {
	Name string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("app: a list named %q already exists", e.Name)
}

// NotFoundError reports an operation attempted with no list selected or
// against an unknown list.
type NotFoundError struct {
	What string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("app: %s not found", e.What)
}

// PersistenceError wraps a file read/write/parse failure. A save failure does
// not roll back the in-memory mutation; the next successful save rewrites
// current state.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("app: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
