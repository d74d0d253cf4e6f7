package store

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation indicates a create or update carried an invalid field.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound indicates the referenced task id is not in the store.
	ErrNotFound = errors.New("task not found")
	// ErrDuplicateAssignee indicates the name is already assigned to the task.
	ErrDuplicateAssignee = errors.New("assignee already present")
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFound(id string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

func duplicateAssignee(name string) error {
	return fmt.Errorf("%w: %s", ErrDuplicateAssignee, name)
}
