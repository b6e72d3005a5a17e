package scheduling

import "fmt"

// ValidationError reports a structurally invalid scheduling request. The
// engine never guesses a fix; the caller must correct the named field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
