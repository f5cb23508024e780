package models

import (
	"fmt"
	"strings"
)

// ValidationError collects every field constraint an entity violated.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
