// Package engine implements the matching engine: given an error report and
// optional context, it selects the single best-fitting rule from its rule set
// and computes a heuristic confidence score.
package engine

import (
	"strings"
	"sync"

	"github.com/errdoc-dev/errdoc/internal/report"
	"github.com/errdoc-dev/errdoc/internal/rule"
)

// Confidence terms. The score is an additive heuristic for ranking rules
// that fire on the same error, not a probability.
const (
	confidenceBase        = 0.5
	bonusTitleInMessage   = 0.3
	bonusFrameworkMatch   = 0.2
	bonusNameOverlap      = 0.1
	bonusSeverityCritical = 0.1
	bonusSeverityHigh     = 0.05
	confidenceMax         = 1.0
)

// Match is the engine's output: the winning rule, the report it matched, and
// a confidence in [0, 1].
type Match struct {
	Rule       *rule.Rule    `json:"rule"`
	Report     report.Report `json:"report"`
	Confidence float64       `json:"confidence"`
}

// Engine holds an ordered rule set and matches reports against it. Rules are
// only ever appended, never removed or mutated in place. An Engine is safe
// for concurrent use: Append is atomic with respect to in-flight matches.
type Engine struct {
	mu    sync.RWMutex
	rules []*rule.Rule
}

// New creates an Engine owning a copy of the given ordered rule set.
func New(rules []*rule.Rule) *Engine {
	e := &Engine{rules: make([]*rule.Rule, len(rules))}
	copy(e.rules, rules)
	return e
}

// Append adds rules to the end of the rule set. Subsequent lookups see them;
// matches already returned are unaffected.
func (e *Engine) Append(rules ...*rule.Rule) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules = append(e.rules, rules...)
}

// snapshot returns the current rule slice header. Readers iterate the
// snapshot without holding the lock; Append only grows the slice, so a
// snapshot never observes a torn rule set.
func (e *Engine) snapshot() []*rule.Rule {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.rules
}

// FindBestMatch evaluates every rule against the report, in rule-set order,
// and returns the highest-confidence match. Ties go to the rule appearing
// earlier in the rule set. Returns nil when no predicate fires; that is a
// legitimate outcome, not an error.
func (e *Engine) FindBestMatch(rep report.Report, ctx *report.Context) *Match {
	var best *Match
	for _, r := range e.snapshot() {
		if !applies(r, rep, ctx) {
			continue
		}
		conf := score(r, rep, ctx)
		if best == nil || conf > best.Confidence {
			best = &Match{Rule: r, Report: rep, Confidence: conf}
		}
	}
	return best
}

// applies runs the rule's predicate, isolating panics: a predicate that
// panics is a catalog-author bug and is treated as "did not match" so the
// remaining rules still get evaluated.
func applies(r *rule.Rule, rep report.Report, ctx *report.Context) (matched bool) {
	defer func() {
		if recover() != nil {
			matched = false
		}
	}()
	if r.Match == nil || !r.Match(rep) {
		return false
	}
	if r.Runtime != nil && ctx != nil && !r.Runtime.Allows(ctx.RuntimeVersion) {
		return false
	}
	return true
}

// score computes the confidence for a single candidate, independently of any
// other candidate.
func score(r *rule.Rule, rep report.Report, ctx *report.Context) float64 {
	conf := confidenceBase

	if r.Title != "" && strings.Contains(strings.ToLower(rep.Message), strings.ToLower(r.Title)) {
		conf += bonusTitleInMessage
	}
	if ctx != nil && ctx.Framework != "" && r.HasFramework(ctx.Framework) {
		conf += bonusFrameworkMatch
	}
	if rep.Name != "" && strings.Contains(strings.ToLower(r.Name), strings.ToLower(rep.Name)) {
		conf += bonusNameOverlap
	}
	switch r.Severity {
	case rule.SeverityCritical:
		conf += bonusSeverityCritical
	case rule.SeverityHigh:
		conf += bonusSeverityHigh
	}

	return min(conf, confidenceMax)
}

// ByCategory returns the rules in the given category, preserving rule-set
// order.
func (e *Engine) ByCategory(cat rule.Category) []*rule.Rule {
	var out []*rule.Rule
	for _, r := range e.snapshot() {
		if r.Category == cat {
			out = append(out, r)
		}
	}
	return out
}

// ByFramework returns the rules naming the given framework, preserving
// rule-set order.
func (e *Engine) ByFramework(name string) []*rule.Rule {
	var out []*rule.Rule
	for _, r := range e.snapshot() {
		if r.HasFramework(name) {
			out = append(out, r)
		}
	}
	return out
}

// Rules returns a copy of the current rule set in order.
func (e *Engine) Rules() []*rule.Rule {
	snap := e.snapshot()
	out := make([]*rule.Rule, len(snap))
	copy(out, snap)
	return out
}

// Stats aggregates counts over the current rule set. Severity buckets are
// keyed by display name, so rules without a declared tier land under
// "unknown". A rule naming several frameworks counts once per framework.
type Stats struct {
	TotalRules  int                   `json:"totalRules" yaml:"totalRules"`
	ByCategory  map[rule.Category]int `json:"byCategory" yaml:"byCategory"`
	BySeverity  map[string]int        `json:"bySeverity" yaml:"bySeverity"`
	ByFramework map[string]int        `json:"byFramework" yaml:"byFramework"`
}

// Stats recomputes aggregate counts from the current rule set.
func (e *Engine) Stats() Stats {
	s := Stats{
		ByCategory:  make(map[rule.Category]int),
		BySeverity:  make(map[string]int),
		ByFramework: make(map[string]int),
	}
	for _, r := range e.snapshot() {
		s.TotalRules++
		s.ByCategory[r.Category]++
		s.BySeverity[r.Severity.String()]++
		for _, f := range r.Frameworks {
			s.ByFramework[f]++
		}
	}
	return s
}
