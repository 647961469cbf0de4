package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/errdoc-dev/errdoc/internal/errors"
	"github.com/errdoc-dev/errdoc/internal/report"
	"github.com/errdoc-dev/errdoc/internal/rule"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "rules.yaml", `
rules:
  - id: custom-timeout
    name: Gateway timeout
    category: network
    severity: high
    title: upstream timed out
    explanation: The upstream service did not answer before the deadline.
    fixes:
      - Raise the client timeout
      - Check upstream health
    frameworks:
      - express
    match:
      message_contains:
        - "504"
        - gateway timeout
  - id: custom-strict
    name: Strict mode assignment
    category: javascript
    title: assignment in strict mode
    explanation: Writing to a read-only property throws under strict mode.
    fixes:
      - Remove the assignment
    match:
      name_is:
        - TypeError
      message_contains:
        - read only
`)

	rules, err := Load(path)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	first := rules[0]
	assert.Equal(t, "custom-timeout", first.ID)
	assert.Equal(t, rule.CategoryNetwork, first.Category)
	assert.Equal(t, rule.SeverityHigh, first.Severity)
	assert.Equal(t, []string{"express"}, first.Frameworks)
	assert.True(t, first.Match(report.Report{Message: "upstream returned 504"}))
	assert.True(t, first.Match(report.Report{Message: "Gateway Timeout"}))
	assert.False(t, first.Match(report.Report{Message: "connection reset"}))

	// Distinct clauses combine conjunctively.
	second := rules[1]
	assert.Equal(t, rule.SeverityUnknown, second.Severity)
	assert.True(t, second.Match(report.Report{Name: "TypeError", Message: "x is read only"}))
	assert.False(t, second.Match(report.Report{Name: "RangeError", Message: "x is read only"}))
	assert.False(t, second.Match(report.Report{Name: "TypeError", Message: "x is frozen"}))
}

func TestLoad_CUE(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "rules.cue", `
rules: [{
	id:          "cue-fetch-abort"
	name:        "Aborted fetch"
	category:    "async"
	severity:    "low"
	title:       "The user aborted a request"
	explanation: "An AbortController cancelled the request before it completed."
	fixes: ["Treat AbortError as cancellation, not failure"]
	match: message_contains: ["aborted a request"]
	min_runtime: ">= 15.0.0"
}]
`)

	rules, err := Load(path)
	require.NoError(t, err)
	require.Len(t, rules, 1)

	r := rules[0]
	assert.Equal(t, "cue-fetch-abort", r.ID)
	assert.Equal(t, rule.CategoryAsync, r.Category)
	assert.True(t, r.Match(report.Report{Message: "The user aborted a request."}))
	require.NotNil(t, r.Runtime)
	assert.True(t, r.Runtime.Allows("18.0.0"))
	assert.False(t, r.Runtime.Allows("14.21.3"))
}

func TestLoad_RegexClause(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "rules.yml", `
rules:
  - id: custom-regex
    name: Regex rule
    category: json
    title: position parse failure
    explanation: x
    fixes: ["y"]
    match:
      message_regex: 'at position \d+'
`)

	rules, err := Load(path)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.True(t, rules[0].Match(report.Report{Message: "Unexpected token } at position 12"}))
	assert.False(t, rules[0].Match(report.Report{Message: "Unexpected token"}))
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		ruleErr bool
	}{
		{
			name:    "unsupported extension",
			file:    "rules.toml",
			content: "rules = []",
		},
		{
			name:    "malformed yaml",
			file:    "rules.yaml",
			content: "rules: [\n",
		},
		{
			name:    "malformed cue",
			file:    "rules.cue",
			content: "rules: [{id:}]",
		},
		{
			name:    "missing id",
			ruleErr: true,
			file: "rules.yaml",
			content: `
rules:
  - name: no id
    category: javascript
    title: t
    explanation: e
    match: {message_contains: [x]}
`,
		},
		{
			name:    "unknown category",
			ruleErr: true,
			file:    "rules.yaml",
			content: `
rules:
  - id: r
    category: cobol
    title: t
    explanation: e
    match: {message_contains: [x]}
`,
		},
		{
			name:    "unknown severity",
			ruleErr: true,
			file:    "rules.yaml",
			content: `
rules:
  - id: r
    category: javascript
    severity: fatal
    title: t
    explanation: e
    match: {message_contains: [x]}
`,
		},
		{
			name:    "empty match",
			ruleErr: true,
			file:    "rules.yaml",
			content: `
rules:
  - id: r
    category: javascript
    title: t
    explanation: e
    match: {}
`,
		},
		{
			name:    "bad regex",
			ruleErr: true,
			file:    "rules.yaml",
			content: `
rules:
  - id: r
    category: javascript
    title: t
    explanation: e
    match: {message_regex: "("}
`,
		},
		{
			name:    "bad version gate",
			ruleErr: true,
			file:    "rules.yaml",
			content: `
rules:
  - id: r
    category: javascript
    title: t
    explanation: e
    match: {message_contains: [x]}
    min_runtime: ">>> nope"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)

			if tt.ruleErr {
				var ruleErr *errors.RuleError
				assert.ErrorAs(t, err, &ruleErr)
			} else {
				var cfgErr *errors.ConfigError
				assert.ErrorAs(t, err, &cfgErr)
			}
		})
	}
}

func TestLoad_CUESchemaEnforced(t *testing.T) {
	t.Parallel()

	// Well-formed CUE that violates the rule-file schema fails at the file
	// boundary, before any rule compiles.
	path := writeFile(t, "rules.cue", `
rules: [{
	id:       "r"
	category: "cobol"
	match: message_contains: ["x"]
}]
`)

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}
