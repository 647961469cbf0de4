// Package ui implements the interactive catalog browser behind
// `errdoc browse`: a filterable rule list with a detail view.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/errdoc-dev/errdoc/internal/rule"
)

// view states
const (
	stateList = iota
	stateDetail
)

// Browser is the Bubble Tea model for the catalog browser.
type Browser struct {
	rules []*rule.Rule

	// Filtered holds indices into rules currently shown.
	filtered []int
	selected int

	state     int
	filtering bool
	filter    textinput.Model
	detail    viewport.Model

	width  int
	height int
}

// NewBrowser creates a Browser over the given rule set.
func NewBrowser(rules []*rule.Rule) Browser {
	ti := textinput.New()
	ti.Placeholder = "Filter rules..."
	ti.CharLimit = 60
	ti.Width = 30

	b := Browser{
		rules:  rules,
		filter: ti,
		detail: viewport.New(0, 0),
	}
	b.applyFilter("")
	return b
}

// Init implements tea.Model.
func (b Browser) Init() tea.Cmd {
	return nil
}

// applyFilter recomputes the visible indices. Matching is a case-insensitive
// substring scan over id, name, title, and category.
func (b *Browser) applyFilter(query string) {
	b.filtered = b.filtered[:0]
	q := strings.ToLower(strings.TrimSpace(query))
	for i, r := range b.rules {
		if q == "" || ruleMatchesQuery(r, q) {
			b.filtered = append(b.filtered, i)
		}
	}
	if b.selected >= len(b.filtered) {
		b.selected = max(len(b.filtered)-1, 0)
	}
}

func ruleMatchesQuery(r *rule.Rule, q string) bool {
	for _, field := range []string{r.ID, r.Name, r.Title, string(r.Category)} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	for _, f := range r.Frameworks {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// current returns the selected rule, or nil when the filter hides everything.
func (b *Browser) current() *rule.Rule {
	if len(b.filtered) == 0 {
		return nil
	}
	return b.rules[b.filtered[b.selected]]
}

// Run starts the browser over the given rules and blocks until it exits.
func Run(rules []*rule.Rule) error {
	p := tea.NewProgram(NewBrowser(rules), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
