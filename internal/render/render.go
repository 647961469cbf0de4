// Package render turns a match (or the absence of one) into human-readable
// console output. It consumes exactly what the engine hands back: the winning
// rule, the original report unmodified, and the context unmodified.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/errdoc-dev/errdoc/internal/engine"
	"github.com/errdoc-dev/errdoc/internal/lookup"
	"github.com/errdoc-dev/errdoc/internal/report"
	"github.com/errdoc-dev/errdoc/internal/rule"
)

// maxFixes is how many suggestions the text form shows; the rest are
// summarized as a count.
const maxFixes = 3

var severityStyles = map[rule.Severity]lipgloss.Style{
	rule.SeverityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // gray
	rule.SeverityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),   // yellow
	rule.SeverityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")), // orange
	rule.SeverityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),   // red
}

// Explainer renders matches for CLI display.
type Explainer struct {
	NoColor bool

	failMark     string
	titleColor   *color.Color
	ruleColor    *color.Color
	fixColor     *color.Color
	exampleColor *color.Color
	dimColor     *color.Color
}

// NewExplainer creates an Explainer. noColor disables all styling, for pipes
// and --no-color.
func NewExplainer(noColor bool) *Explainer {
	if noColor {
		color.NoColor = true
	}
	return &Explainer{
		NoColor:      noColor,
		failMark:     color.New(color.FgRed).Sprint("✗"),
		titleColor:   color.New(color.FgCyan, color.Bold),
		ruleColor:    color.New(color.FgCyan),
		fixColor:     color.New(color.FgGreen),
		exampleColor: color.New(color.FgBlue),
		dimColor:     color.New(color.FgHiBlack),
	}
}

// Explain renders a match as text. A nil match produces the unknown-error
// fallback rather than an empty string.
func (e *Explainer) Explain(m *engine.Match, rep report.Report, ctx *report.Context) string {
	if m == nil {
		return e.explainUnknown(rep)
	}

	var sb strings.Builder

	e.writeHeadline(&sb, rep)

	sb.WriteString(e.titleColor.Sprint(m.Rule.Name))
	sb.WriteString("  ")
	sb.WriteString(e.severityBadge(m.Rule.Severity))
	sb.WriteString(e.dimColor.Sprintf("  (confidence %d%%)", int(m.Confidence*100)))
	sb.WriteString("\n\n")

	for line := range strings.SplitSeq(m.Rule.Explanation, "\n") {
		sb.WriteString("  ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if len(m.Rule.Fixes) > 0 {
		sb.WriteString("\n")
		sb.WriteString(e.fixColor.Sprint("Fixes:"))
		sb.WriteString("\n")
		shown := min(len(m.Rule.Fixes), maxFixes)
		for i, fix := range m.Rule.Fixes[:shown] {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, fix))
		}
		if rest := len(m.Rule.Fixes) - shown; rest > 0 {
			sb.WriteString(e.dimColor.Sprintf("  (+%d more)\n", rest))
		}
	}

	if len(m.Rule.Examples) > 0 {
		sb.WriteString("\n")
		sb.WriteString(e.exampleColor.Sprint("Example:"))
		sb.WriteString("\n")
		for line := range strings.SplitSeq(m.Rule.Examples[0], "\n") {
			sb.WriteString("  ")
			sb.WriteString(e.dimColor.Sprint(line))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(e.dimColor.Sprintf("Matched rule: %s (%s)", m.Rule.ID, m.Rule.Category))
	sb.WriteString("\n")

	if ctx != nil && ctx.Code != "" {
		sb.WriteString(e.dimColor.Sprintf("At: %s", formatPosition(ctx)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// ExplainLegacy renders a legacy lookup-table hit: a one-line explanation
// with none of the engine's metadata.
func (e *Explainer) ExplainLegacy(entry lookup.Entry, rep report.Report) string {
	var sb strings.Builder
	e.writeHeadline(&sb, rep)
	sb.WriteString("  ")
	sb.WriteString(entry.Explanation)
	sb.WriteString("\n\n")
	sb.WriteString(e.dimColor.Sprint("Matched legacy pattern: "))
	sb.WriteString(e.dimColor.Sprint(entry.Pattern))
	sb.WriteString("\n")
	return sb.String()
}

// explainUnknown is the fallback when no rule fired.
func (e *Explainer) explainUnknown(rep report.Report) string {
	var sb strings.Builder
	e.writeHeadline(&sb, rep)
	sb.WriteString(e.titleColor.Sprint("Unknown error"))
	sb.WriteString("\n\n")
	sb.WriteString("  This error does not match any known failure pattern.\n")
	sb.WriteString("\n")
	sb.WriteString(e.fixColor.Sprint("Suggestions:"))
	sb.WriteString("\n")
	sb.WriteString("  1. Read the first line of the stack trace; the top frame is usually yours\n")
	sb.WriteString("  2. Search the exact message text\n")
	sb.WriteString("  3. Add a custom rule for it: errdoc explain --rules <file>\n")
	return sb.String()
}

func (e *Explainer) writeHeadline(sb *strings.Builder, rep report.Report) {
	sb.WriteString(e.failMark)
	sb.WriteString(" ")
	if rep.Name != "" {
		sb.WriteString(color.New(color.FgRed, color.Bold).Sprint(rep.Name))
		sb.WriteString(": ")
	}
	sb.WriteString(rep.Message)
	sb.WriteString("\n\n")
}

func (e *Explainer) severityBadge(s rule.Severity) string {
	label := "[" + s.String() + "]"
	if e.NoColor {
		return label
	}
	if style, ok := severityStyles[s]; ok {
		return style.Render(label)
	}
	return severityStyles[rule.SeverityLow].Render(label)
}

func formatPosition(ctx *report.Context) string {
	pos := ctx.Code
	if ctx.Line > 0 {
		pos = fmt.Sprintf("%s:%d", pos, ctx.Line)
		if ctx.Column > 0 {
			pos = fmt.Sprintf("%s:%d", pos, ctx.Column)
		}
	}
	return pos
}

// jsonOutput is the machine-readable form of an explanation.
type jsonOutput struct {
	Matched    bool            `json:"matched"`
	Rule       *rule.Rule      `json:"rule,omitempty"`
	Confidence float64         `json:"confidence,omitempty"`
	Report     report.Report   `json:"report"`
	Context    *report.Context `json:"context,omitempty"`
}

// ExplainJSON renders a match (or no-match) as indented JSON.
func (e *Explainer) ExplainJSON(m *engine.Match, rep report.Report, ctx *report.Context) ([]byte, error) {
	out := jsonOutput{Report: rep, Context: ctx}
	if m != nil {
		out.Matched = true
		out.Rule = m.Rule
		out.Confidence = m.Confidence
	}
	return json.MarshalIndent(out, "", "  ")
}
