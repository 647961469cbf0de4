package rule

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/errdoc-dev/errdoc/internal/report"
)

// Predicate constructors for catalog authors. All string matching is
// case-insensitive substring search; anything fancier belongs in a custom
// Matcher closure.

// MessageContains matches when the report message contains any of the given
// substrings.
func MessageContains(substrings ...string) Matcher {
	lowered := lowerAll(substrings)
	return func(r report.Report) bool {
		msg := strings.ToLower(r.Message)
		for _, s := range lowered {
			if strings.Contains(msg, s) {
				return true
			}
		}
		return false
	}
}

// MessageMatches matches the report message against a compiled regular
// expression.
func MessageMatches(re *regexp.Regexp) Matcher {
	return func(r report.Report) bool {
		return re.MatchString(r.Message)
	}
}

// NameIs matches when the report's error class name equals any of the given
// names, case-insensitively.
func NameIs(names ...string) Matcher {
	lowered := lowerAll(names)
	return func(r report.Report) bool {
		name := strings.ToLower(r.Name)
		for _, n := range lowered {
			if name == n {
				return true
			}
		}
		return false
	}
}

// StackContains matches when the stack text contains any of the given
// substrings.
func StackContains(substrings ...string) Matcher {
	lowered := lowerAll(substrings)
	return func(r report.Report) bool {
		stack := strings.ToLower(r.Stack)
		for _, s := range lowered {
			if strings.Contains(stack, s) {
				return true
			}
		}
		return false
	}
}

// All combines matchers conjunctively.
func All(matchers ...Matcher) Matcher {
	return func(r report.Report) bool {
		for _, m := range matchers {
			if !m(r) {
				return false
			}
		}
		return true
	}
}

// Any combines matchers disjunctively.
func Any(matchers ...Matcher) Matcher {
	return func(r report.Report) bool {
		for _, m := range matchers {
			if m(r) {
				return true
			}
		}
		return false
	}
}

// VersionGate evaluates a semver constraint, e.g. "< 17.0.0" or ">= 14.8",
// against a runtime version string. An empty version or an unparsable one
// passes the gate: context hints narrow predicates only when actually
// supplied, they never exclude a rule on their own.
type VersionGate struct {
	constraint *semver.Constraints
}

// NewVersionGate compiles a semver constraint. The constraint syntax follows
// Masterminds/semver; an invalid constraint is a catalog-author bug and is
// returned as an error at construction time, not at match time.
func NewVersionGate(constraint string) (*VersionGate, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, err
	}
	return &VersionGate{constraint: c}, nil
}

// MustVersionGate is NewVersionGate for static catalog entries; it panics on
// an invalid constraint.
func MustVersionGate(constraint string) *VersionGate {
	g, err := NewVersionGate(constraint)
	if err != nil {
		panic(err)
	}
	return g
}

// Allows reports whether the given runtime version satisfies the gate.
func (g *VersionGate) Allows(version string) bool {
	if g == nil || version == "" {
		return true
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return true
	}
	return g.constraint.Check(v)
}

func lowerAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToLower(s)
	}
	return out
}
