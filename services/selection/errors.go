package selection

import "fmt"

// ValidationError signals a toggle or candidate set that cannot be evaluated
// at all, such as a dish id the package does not contain. It is rejected
// before any state changes.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("selection validation: %s", e.Message)
}

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
