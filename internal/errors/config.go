//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import "fmt"

// ConfigError represents a rule-file loading or parsing error.
type ConfigError struct {
	Base Error `json:"error"`

	// File is the path to the rule file.
	File string `json:"file,omitempty"`

	// Line and Column locate the problem in the file, when known.
	Line   int `json:"line,omitempty"`
	Column int `json:"column,omitempty"`
}

// NewConfigError creates a ConfigError.
func NewConfigError(file, message string, cause error) *ConfigError {
	return &ConfigError{
		Base: Error{
			Category: CategoryConfig,
			Code:     CodeConfigParse,
			Message:  message,
			Cause:    cause,
		},
		File: file,
	}
}

// WithLocation sets the line and column.
func (e *ConfigError) WithLocation(line, column int) *ConfigError {
	e.Line = line
	e.Column = column
	return e
}

// WithHint sets the hint on the base error.
func (e *ConfigError) WithHint(hint string) *ConfigError {
	e.Base.Hint = hint
	return e
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, e.Base.Error())
	}
	return e.Base.Error()
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}

// RuleError represents an invalid rule definition inside an otherwise
// well-formed rule file: a bad regex, an unknown category, an invalid
// version constraint.
type RuleError struct {
	Base Error `json:"error"`

	// File is the rule file the definition came from.
	File string `json:"file,omitempty"`

	// RuleID identifies the offending rule.
	RuleID string `json:"ruleId,omitempty"`

	// Field is the rule field that failed to compile.
	Field string `json:"field,omitempty"`
}

// NewRuleError creates a RuleError for a rule field that failed to compile.
func NewRuleError(file, ruleID, field string, cause error) *RuleError {
	return &RuleError{
		Base: Error{
			Category: CategoryConfig,
			Code:     CodeRuleCompile,
			Message:  fmt.Sprintf("invalid rule %q", ruleID),
			Cause:    cause,
		},
		File:   file,
		RuleID: ruleID,
		Field:  field,
	}
}

// WithHint sets the hint on the base error.
func (e *RuleError) WithHint(hint string) *RuleError {
	e.Base.Hint = hint
	return e
}

// Error implements the error interface.
func (e *RuleError) Error() string {
	return e.Base.Error()
}

// Unwrap returns the underlying error.
func (e *RuleError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *RuleError) Is(target error) bool {
	t, ok := target.(*RuleError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}
