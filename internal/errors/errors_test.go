//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "without cause",
			err: &Error{
				Category: CategoryCatalog,
				Code:     CodeUnknownCategory,
				Message:  "unknown category",
			},
			expected: "unknown category",
		},
		{
			name: "with cause",
			err: &Error{
				Category: CategoryConfig,
				Code:     CodeConfigParse,
				Message:  "failed to parse rule file",
				Cause:    errors.New("invalid syntax"),
			},
			expected: "failed to parse rule file: invalid syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("underlying error")
	err := &Error{
		Category: CategoryInput,
		Code:     CodeInputRead,
		Message:  "failed to read error report",
		Cause:    cause,
	}

	assert.Equal(t, cause, err.Unwrap())
}

func TestError_Is(t *testing.T) {
	t.Parallel()

	a := New(CategoryConfig, "parse failed")
	a.Code = CodeConfigParse
	b := New(CategoryConfig, "different message")
	b.Code = CodeConfigParse

	assert.ErrorIs(t, a, b)

	c := New(CategoryConfig, "parse failed")
	c.Code = CodeRuleCompile
	assert.NotErrorIs(t, a, c)
}

func TestError_WithMethods(t *testing.T) {
	t.Parallel()

	err := New(CategoryConfig, "test error")

	_ = err.WithHint("try this").
		WithExample("example: foo").
		WithDetail("key", "value")

	assert.Equal(t, "try this", err.Hint)
	assert.Equal(t, "example: foo", err.Example)
	assert.Equal(t, "value", err.Details["key"])
}

func TestWrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := Wrap(CategoryInput, "read failed", cause)

	assert.Equal(t, "read failed: boom", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestInputError(t *testing.T) {
	t.Parallel()

	cause := errors.New("permission denied")
	err := NewInputReadError("crash.json", cause)

	assert.Equal(t, "crash.json: failed to read error report: permission denied", err.Error())
	assert.Equal(t, CodeInputRead, err.Base.Code)
	assert.ErrorIs(t, err, cause)

	parseErr := NewInputParseError("stdin", errors.New("bad json"))
	assert.Equal(t, CodeInputParse, parseErr.Base.Code)
}

func TestConfigError(t *testing.T) {
	t.Parallel()

	err := NewConfigError("rules.yaml", "failed to parse YAML rule file", errors.New("line 3")).
		WithLocation(3, 7).
		WithHint("check the indentation")

	assert.Equal(t, "rules.yaml: failed to parse YAML rule file: line 3", err.Error())
	assert.Equal(t, 3, err.Line)
	assert.Equal(t, 7, err.Column)
	assert.Equal(t, "check the indentation", err.Base.Hint)
}

func TestRuleError(t *testing.T) {
	t.Parallel()

	err := NewRuleError("rules.yaml", "my-rule", "message_regex", errors.New("missing closing )"))

	assert.Contains(t, err.Error(), `invalid rule "my-rule"`)
	assert.Equal(t, "message_regex", err.Field)
	assert.Equal(t, CodeRuleCompile, err.Base.Code)
}

func TestFormatter_Format(t *testing.T) {
	t.Parallel()

	f := NewFormatter(&bytes.Buffer{}, true)

	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name: "input error",
			err:  NewInputReadError("crash.json", errors.New("no such file")),
			contains: []string{
				"Error [E101]: failed to read error report",
				"Source: crash.json",
				"Cause: no such file",
			},
		},
		{
			name: "config error with location",
			err: NewConfigError("rules.yaml", "failed to parse YAML rule file", nil).
				WithLocation(3, 7).
				WithHint("check the indentation"),
			contains: []string{
				"Error [E201]",
				"File: rules.yaml",
				"Line: 3:7",
				"Hint: check the indentation",
			},
		},
		{
			name: "rule error",
			err:  NewRuleError("rules.yaml", "my-rule", "category", errors.New("unknown category \"cobol\"")),
			contains: []string{
				"Error [E202]",
				"File:  rules.yaml",
				"Field: category",
				"Cause: unknown category",
			},
		},
		{
			name: "base error with example",
			err:  New(CategoryCatalog, "unknown category").WithExample("errdoc rules --category network"),
			contains: []string{
				"Error: unknown category",
				"Example:",
				"errdoc rules --category network",
			},
		},
		{
			name:     "plain error falls back",
			err:      errors.New("something else"),
			contains: []string{"Error: something else"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := f.Format(tt.err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestFormatter_FormatNil(t *testing.T) {
	t.Parallel()

	f := NewFormatter(&bytes.Buffer{}, true)
	assert.Empty(t, f.Format(nil))
}

func TestFormatter_FormatJSON(t *testing.T) {
	t.Parallel()

	f := NewFormatter(&bytes.Buffer{}, true)

	data, err := f.FormatJSON(NewConfigError("rules.yaml", "failed to parse YAML rule file", nil))
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "rules.yaml", out["file"])

	inner, ok := out["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "E201", inner["code"])
}
