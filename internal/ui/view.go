package ui

import (
	"fmt"
	"strings"

	"github.com/errdoc-dev/errdoc/internal/rule"
)

// listChrome is the vertical space taken by the header, filter line, and
// footer around the list.
const listChrome = 5

// View implements tea.Model.
func (b Browser) View() string {
	if b.state == stateDetail {
		return b.viewDetail()
	}
	return b.viewList()
}

func (b Browser) viewList() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(fmt.Sprintf("errdoc catalog — %d rules", len(b.filtered))))
	sb.WriteString("\n")

	if b.filtering || b.filter.Value() != "" {
		sb.WriteString(b.filter.View())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	visible := max(b.height-listChrome, 1)
	start := 0
	if b.selected >= visible {
		start = b.selected - visible + 1
	}

	for i := start; i < len(b.filtered) && i < start+visible; i++ {
		r := b.rules[b.filtered[i]]
		line := fmt.Sprintf("%-28s %s %s", truncate(r.Name, 28), categoryStyle.Render(string(r.Category)), severityLabel(r.Severity))
		if i == b.selected {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if len(b.filtered) == 0 {
		sb.WriteString(dimStyle.Render("  no rules match the filter"))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("↑/↓ move · enter detail · / filter · q quit"))
	return sb.String()
}

func (b Browser) viewDetail() string {
	var sb strings.Builder
	r := b.current()
	if r == nil {
		return ""
	}
	sb.WriteString(headerStyle.Render(r.Name))
	sb.WriteString("  ")
	sb.WriteString(severityLabel(r.Severity))
	sb.WriteString("\n\n")
	sb.WriteString(b.detail.View())
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("esc back · ↑/↓ scroll · q quit"))
	return sb.String()
}

// renderDetail builds the scrollable detail body for a rule.
func renderDetail(r *rule.Rule) string {
	var sb strings.Builder

	sb.WriteString(dimStyle.Render(fmt.Sprintf("%s · %s", r.ID, r.Category)))
	if len(r.Frameworks) > 0 {
		sb.WriteString(dimStyle.Render(" · " + strings.Join(r.Frameworks, ", ")))
	}
	sb.WriteString("\n\n")

	sb.WriteString(dimStyle.Render("Pattern: "))
	sb.WriteString(r.Title)
	sb.WriteString("\n\n")

	sb.WriteString(r.Explanation)
	sb.WriteString("\n")

	if len(r.Fixes) > 0 {
		sb.WriteString("\n")
		sb.WriteString(fixStyle.Render("Fixes:"))
		sb.WriteString("\n")
		for i, fix := range r.Fixes {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, fix))
		}
	}

	for _, ex := range r.Examples {
		sb.WriteString("\n")
		sb.WriteString(exampleStyle.Render("Example:"))
		sb.WriteString("\n")
		for line := range strings.SplitSeq(ex, "\n") {
			sb.WriteString("  ")
			sb.WriteString(dimStyle.Render(line))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
