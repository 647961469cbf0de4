// Package rule defines the catalog entry type the matching engine consumes:
// a pure predicate over an error report paired with the human-readable
// remediation metadata rendered to the user.
package rule

import (
	"strings"

	"github.com/errdoc-dev/errdoc/internal/report"
)

// Category classifies a rule by the failure domain it covers.
type Category string

const (
	CategoryJavaScript Category = "javascript"
	CategoryNodeJS     Category = "nodejs"
	CategoryReact      Category = "react"
	CategoryNetwork    Category = "network"
	CategoryAsync      Category = "async"
	CategoryJSON       Category = "json"
)

// Categories returns every known category in display order.
func Categories() []Category {
	return []Category{
		CategoryJavaScript,
		CategoryNodeJS,
		CategoryReact,
		CategoryNetwork,
		CategoryAsync,
		CategoryJSON,
	}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Matcher is a rule predicate. It must be side-effect-free and deterministic
// for a given report.
type Matcher func(report.Report) bool

// Rule is a single catalog entry.
type Rule struct {
	// ID is a stable unique identifier. Uniqueness across the effective
	// rule set is a catalog-author responsibility; the engine does not
	// validate it.
	ID string `json:"id" yaml:"id"`

	// Name is the display name.
	Name string `json:"name" yaml:"name"`

	// Category is the failure domain this rule belongs to.
	Category Category `json:"category" yaml:"category"`

	// Match is the predicate deciding whether this rule applies.
	Match Matcher `json:"-" yaml:"-"`

	// Runtime optionally narrows the predicate to runtime versions
	// satisfying a semver constraint. It is part of the predicate, not a
	// context hint: a nil gate, an empty context version, or an
	// unparsable one all pass.
	Runtime *VersionGate `json:"-" yaml:"-"`

	// Title is a short headline for the failure pattern.
	Title string `json:"title" yaml:"title"`

	// Explanation describes what went wrong in plain language.
	Explanation string `json:"explanation" yaml:"explanation"`

	// Fixes are actionable suggestions in priority order. Renderers
	// typically show only the first few.
	Fixes []string `json:"fixes" yaml:"fixes"`

	// Examples are illustrative code snippets, for display only.
	Examples []string `json:"examples,omitempty" yaml:"examples,omitempty"`

	// Severity is the impact tier. Empty means unknown, the lowest
	// confidence tier.
	Severity Severity `json:"severity,omitempty" yaml:"severity,omitempty"`

	// Frameworks names the frameworks this rule is especially relevant
	// to, e.g. "react" or "express".
	Frameworks []string `json:"frameworks,omitempty" yaml:"frameworks,omitempty"`
}

// HasFramework reports whether name is in the rule's framework set,
// case-insensitively; framework names arrive from user flags.
func (r *Rule) HasFramework(name string) bool {
	if name == "" {
		return false
	}
	for _, f := range r.Frameworks {
		if strings.EqualFold(f, name) {
			return true
		}
	}
	return false
}
