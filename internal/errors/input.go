//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

// InputError represents an unreadable or unparsable error report.
type InputError struct {
	Base Error `json:"error"`

	// Source names where the report came from: a file path or "stdin".
	Source string `json:"source,omitempty"`
}

// NewInputReadError creates an InputError for a source that could not be read.
func NewInputReadError(source string, cause error) *InputError {
	return &InputError{
		Base: Error{
			Category: CategoryInput,
			Code:     CodeInputRead,
			Message:  "failed to read error report",
			Cause:    cause,
		},
		Source: source,
	}
}

// NewInputParseError creates an InputError for a report that could not be
// parsed.
func NewInputParseError(source string, cause error) *InputError {
	return &InputError{
		Base: Error{
			Category: CategoryInput,
			Code:     CodeInputParse,
			Message:  "failed to parse error report",
			Cause:    cause,
		},
		Source: source,
	}
}

// WithHint sets the hint on the base error.
func (e *InputError) WithHint(hint string) *InputError {
	e.Base.Hint = hint
	return e
}

// Error implements the error interface.
func (e *InputError) Error() string {
	if e.Source != "" {
		return e.Source + ": " + e.Base.Error()
	}
	return e.Base.Error()
}

// Unwrap returns the underlying error.
func (e *InputError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *InputError) Is(target error) bool {
	t, ok := target.(*InputError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}
