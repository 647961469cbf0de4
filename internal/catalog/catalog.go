// Package catalog holds the builtin rule set: known failure patterns of
// JavaScript-family runtimes, grouped by category into one file each. The
// catalog is plain data consumed by the engine; it carries no matching logic
// of its own beyond each rule's predicate.
package catalog

import "github.com/errdoc-dev/errdoc/internal/rule"

// Rules returns the builtin catalog in its canonical order. The order is
// significant: the engine breaks confidence ties in favor of earlier rules,
// so more specific patterns within a category come first.
func Rules() []*rule.Rule {
	var out []*rule.Rule
	out = append(out, javascriptRules()...)
	out = append(out, nodejsRules()...)
	out = append(out, reactRules()...)
	out = append(out, networkRules()...)
	out = append(out, asyncRules()...)
	out = append(out, jsonRules()...)
	return out
}
