package cart

import (
	"fmt"

	"caterly/services/selection"
)

// ValidationError rejects a cart mutation before anything is written; the
// line's previous state is retained.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("cart validation: %s", e.Message)
}

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// SelectionRejectedError carries the structured rejection when an add or
// update names a dish set the package's policy refuses. Handlers unwrap it to
// tell the buyer which category overflowed and what its limit is.
type SelectionRejectedError struct {
	Rejection selection.Rejected
}

func (e *SelectionRejectedError) Error() string {
	return fmt.Sprintf("selection rejected: category %q allows at most %d dishes",
		e.Rejection.CategoryName, e.Rejection.Limit)
}

// NotFoundError reports a mutation aimed at a cart line that does not exist
// in the owner's store.
type NotFoundError struct {
	LineID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cart line %s not found", e.LineID)
}

// PersistenceError wraps a failed store call. The store was not updated by
// the failed call; the caller may retry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("cart persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// SupersededError reports that a newer mutation to the same line was issued
// while this one's persistence call was in flight; the stale result was
// discarded and the newer write stands.
type SupersededError struct {
	LineID string
}

func (e *SupersededError) Error() string {
	return fmt.Sprintf("cart line %s: mutation superseded by a newer edit", e.LineID)
}
