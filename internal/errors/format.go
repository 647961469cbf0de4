//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Formatter formats errdoc's own errors for CLI output.
type Formatter struct {
	NoColor bool
	Writer  io.Writer

	// Colors
	errorColor   *color.Color
	codeColor    *color.Color
	sourceColor  *color.Color
	hintColor    *color.Color
	exampleColor *color.Color
	dimColor     *color.Color
}

// NewFormatter creates a new Formatter.
func NewFormatter(w io.Writer, noColor bool) *Formatter {
	if noColor {
		color.NoColor = true
	}

	return &Formatter{
		NoColor:      noColor,
		Writer:       w,
		errorColor:   color.New(color.FgRed, color.Bold),
		codeColor:    color.New(color.FgRed),
		sourceColor:  color.New(color.FgCyan),
		hintColor:    color.New(color.FgGreen),
		exampleColor: color.New(color.FgBlue),
		dimColor:     color.New(color.FgHiBlack),
	}
}

// formatErrorHeader writes the error header with code.
// Format: "Error [E201]: message" or "Error: message" if no code.
func (f *Formatter) formatErrorHeader(sb *strings.Builder, code Code, message string) {
	sb.WriteString(f.errorColor.Sprint("Error"))
	if code != "" {
		sb.WriteString(" ")
		sb.WriteString(f.codeColor.Sprintf("[%s]", code))
	}
	sb.WriteString(f.errorColor.Sprint(": "))
	sb.WriteString(message)
	sb.WriteString("\n")
}

// Format formats an error for CLI display.
func (f *Formatter) Format(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	var inputErr *InputError
	var configErr *ConfigError
	var ruleErr *RuleError
	var baseErr *Error

	switch {
	case errors.As(err, &inputErr):
		f.formatInputError(&sb, inputErr)
	case errors.As(err, &configErr):
		f.formatConfigError(&sb, configErr)
	case errors.As(err, &ruleErr):
		f.formatRuleError(&sb, ruleErr)
	case errors.As(err, &baseErr):
		f.formatBaseError(&sb, baseErr)
	default:
		// Fallback for non-errdoc errors
		sb.WriteString(f.errorColor.Sprint("Error: "))
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatJSON formats an error as JSON.
func (f *Formatter) FormatJSON(err error) ([]byte, error) {
	if err == nil {
		return nil, nil
	}

	var inputErr *InputError
	var configErr *ConfigError
	var ruleErr *RuleError
	var baseErr *Error

	switch {
	case errors.As(err, &inputErr):
		return json.MarshalIndent(inputErr, "", "  ")
	case errors.As(err, &configErr):
		return json.MarshalIndent(configErr, "", "  ")
	case errors.As(err, &ruleErr):
		return json.MarshalIndent(ruleErr, "", "  ")
	case errors.As(err, &baseErr):
		return json.MarshalIndent(baseErr, "", "  ")
	default:
		return json.MarshalIndent(map[string]string{"error": err.Error()}, "", "  ")
	}
}

func (f *Formatter) formatInputError(sb *strings.Builder, err *InputError) {
	f.formatErrorHeader(sb, err.Base.Code, err.Base.Message)
	sb.WriteString("\n")

	if err.Source != "" {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("Source: "))
		sb.WriteString(f.sourceColor.Sprint(err.Source))
		sb.WriteString("\n")
	}

	if err.Base.Cause != nil {
		sb.WriteString("\n  ")
		sb.WriteString(f.dimColor.Sprint("Cause: "))
		sb.WriteString(err.Base.Cause.Error())
		sb.WriteString("\n")
	}

	f.formatHintAndExample(sb, &err.Base)
}

func (f *Formatter) formatConfigError(sb *strings.Builder, err *ConfigError) {
	f.formatErrorHeader(sb, err.Base.Code, err.Base.Message)
	sb.WriteString("\n")

	if err.File != "" {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("File: "))
		sb.WriteString(f.sourceColor.Sprint(err.File))
		sb.WriteString("\n")
	}

	if err.Line > 0 {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("Line: "))
		sb.WriteString(f.sourceColor.Sprintf("%d", err.Line))
		if err.Column > 0 {
			sb.WriteString(f.sourceColor.Sprintf(":%d", err.Column))
		}
		sb.WriteString("\n")
	}

	if err.Base.Cause != nil {
		sb.WriteString("\n  ")
		sb.WriteString(f.dimColor.Sprint("Cause: "))
		sb.WriteString(err.Base.Cause.Error())
		sb.WriteString("\n")
	}

	f.formatHintAndExample(sb, &err.Base)
}

func (f *Formatter) formatRuleError(sb *strings.Builder, err *RuleError) {
	f.formatErrorHeader(sb, err.Base.Code, err.Base.Message)
	sb.WriteString("\n")

	if err.File != "" {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("File:  "))
		sb.WriteString(f.sourceColor.Sprint(err.File))
		sb.WriteString("\n")
	}

	if err.Field != "" {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("Field: "))
		sb.WriteString(err.Field)
		sb.WriteString("\n")
	}

	if err.Base.Cause != nil {
		sb.WriteString("\n  ")
		sb.WriteString(f.dimColor.Sprint("Cause: "))
		sb.WriteString(err.Base.Cause.Error())
		sb.WriteString("\n")
	}

	f.formatHintAndExample(sb, &err.Base)
}

func (f *Formatter) formatBaseError(sb *strings.Builder, err *Error) {
	f.formatErrorHeader(sb, err.Code, err.Message)

	if err.Cause != nil {
		sb.WriteString("\n  ")
		sb.WriteString(f.dimColor.Sprint("Cause: "))
		sb.WriteString(err.Cause.Error())
		sb.WriteString("\n")
	}

	f.formatHintAndExample(sb, err)
}

func (f *Formatter) formatHintAndExample(sb *strings.Builder, err *Error) {
	if err.Hint != "" {
		sb.WriteString("\n")
		sb.WriteString(f.hintColor.Sprint("Hint: "))
		lines := strings.Split(err.Hint, "\n")
		sb.WriteString(lines[0])
		sb.WriteString("\n")
		for _, line := range lines[1:] {
			sb.WriteString("      ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	if err.Example != "" {
		sb.WriteString("\n")
		sb.WriteString(f.exampleColor.Sprint("Example:"))
		sb.WriteString("\n")
		for line := range strings.SplitSeq(err.Example, "\n") {
			sb.WriteString("  ")
			sb.WriteString(f.dimColor.Sprint(line))
			sb.WriteString("\n")
		}
	}
}
