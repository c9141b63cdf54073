package core

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies engine failures for callers that need to
// distinguish configuration problems from I/O or recognition failures.
type ErrorCategory string

const (
	// CategoryConfig covers malformed or invalid configuration, raised at
	// construction or UpdateConfig time.
	CategoryConfig ErrorCategory = "config"

	// CategoryInput covers missing, unreadable, or invalid input workbooks.
	CategoryInput ErrorCategory = "input"

	// CategoryOutput covers failures while saving the redacted workbook or
	// the detection report.
	CategoryOutput ErrorCategory = "output"

	// CategoryRecognition covers analyzer failures mid-cell. These abort the
	// whole workbook: a partially redacted file that looks complete is worse
	// than a clear failure.
	CategoryRecognition ErrorCategory = "recognition"
)

// EngineError wraps an underlying error with its category. The original
// error is preserved and reachable via errors.Unwrap.
type EngineError struct {
	Category ErrorCategory
	Err      error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Category, e.Err.Error())
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

func newEngineError(category ErrorCategory, format string, args ...any) *EngineError {
	return &EngineError{Category: category, Err: fmt.Errorf(format, args...)}
}

// IsCategory reports whether err is an EngineError of the given category.
func IsCategory(err error, category ErrorCategory) bool {
	var ee *EngineError
	return errors.As(err, &ee) && ee.Category == category
}
