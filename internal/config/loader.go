// Package config loads user-supplied rule files and compiles them into rules
// the engine can consume. Rule files declare pattern-based predicates as
// data; the loader turns each declaration into a Matcher closure so the
// engine stays free of file-format knowledge.
//
// Two formats are supported, dispatched by extension: YAML (.yaml/.yml) and
// CUE (.cue).
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/goccy/go-yaml"

	"github.com/errdoc-dev/errdoc/cuemodule"
	"github.com/errdoc-dev/errdoc/internal/errors"
	"github.com/errdoc-dev/errdoc/internal/rule"
)

// ruleFile is the on-disk shape of a rule file.
type ruleFile struct {
	Rules []ruleDef `yaml:"rules" json:"rules"`
}

// ruleDef is one declared rule. Field names are shared between the YAML and
// CUE forms.
type ruleDef struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Category    string   `yaml:"category" json:"category"`
	Severity    string   `yaml:"severity,omitempty" json:"severity,omitempty"`
	Title       string   `yaml:"title" json:"title"`
	Explanation string   `yaml:"explanation" json:"explanation"`
	Fixes       []string `yaml:"fixes" json:"fixes"`
	Examples    []string `yaml:"examples,omitempty" json:"examples,omitempty"`
	Frameworks  []string `yaml:"frameworks,omitempty" json:"frameworks,omitempty"`
	Match       matchDef `yaml:"match" json:"match"`
	MinRuntime  string   `yaml:"min_runtime,omitempty" json:"min_runtime,omitempty"`
}

// matchDef declares the predicate. Clauses within a list are disjunctive;
// distinct clauses combine conjunctively.
type matchDef struct {
	MessageContains []string `yaml:"message_contains,omitempty" json:"message_contains,omitempty"`
	MessageRegex    string   `yaml:"message_regex,omitempty" json:"message_regex,omitempty"`
	NameIs          []string `yaml:"name_is,omitempty" json:"name_is,omitempty"`
	StackContains   []string `yaml:"stack_contains,omitempty" json:"stack_contains,omitempty"`
}

func (m matchDef) empty() bool {
	return len(m.MessageContains) == 0 && m.MessageRegex == "" &&
		len(m.NameIs) == 0 && len(m.StackContains) == 0
}

// Load reads and compiles a rule file. The returned rules preserve file
// order and can be handed straight to the engine's append operation.
func Load(path string) ([]*rule.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(path, "failed to read rule file", err)
	}

	var file ruleFile
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, errors.NewConfigError(path, "failed to parse YAML rule file", err).
				WithHint("Rule files hold a top-level `rules` list; run `errdoc rules -o yaml` to see the field shape")
		}
	case ".cue":
		if err := decodeCUE(data, &file); err != nil {
			return nil, errors.NewConfigError(path, "failed to parse CUE rule file", err)
		}
	default:
		return nil, errors.NewConfigError(path, fmt.Sprintf("unsupported rule file extension %q", ext), nil).
			WithHint("Supported formats: .yaml, .yml, .cue")
	}

	rules, err := compile(path, file.Rules)
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded custom rules", "file", path, "count", len(rules))
	return rules, nil
}

// decodeCUE evaluates CUE source, unifies it with the embedded rule-file
// schema, and decodes it into the shared file shape. Unification rejects
// unknown categories, severities, and stray fields before compilation.
func decodeCUE(data []byte, out *ruleFile) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(cuemodule.SchemaCUE)
	if err := schema.Err(); err != nil {
		return err
	}

	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return err
	}

	unified := v.Unify(schema.LookupPath(cue.ParsePath("#RuleFile")))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return err
	}
	return unified.Decode(out)
}

// compile validates each definition and builds its Matcher closure.
func compile(path string, defs []ruleDef) ([]*rule.Rule, error) {
	rules := make([]*rule.Rule, 0, len(defs))
	for i, def := range defs {
		if def.ID == "" {
			return nil, errors.NewRuleError(path, fmt.Sprintf("rules[%d]", i), "id", nil).
				WithHint("Every rule needs a stable, unique id")
		}

		cat := rule.Category(def.Category)
		if !cat.Valid() {
			return nil, errors.NewRuleError(path, def.ID, "category",
				fmt.Errorf("unknown category %q", def.Category)).
				WithHint("Valid categories: " + categoryList())
		}

		sev := rule.Severity(def.Severity)
		if !sev.Valid() {
			return nil, errors.NewRuleError(path, def.ID, "severity",
				fmt.Errorf("unknown severity %q", def.Severity)).
				WithHint("Valid severities: low, medium, high, critical (or omit)")
		}

		matcher, err := compileMatch(path, def.ID, def.Match)
		if err != nil {
			return nil, err
		}

		r := &rule.Rule{
			ID:          def.ID,
			Name:        def.Name,
			Category:    cat,
			Match:       matcher,
			Title:       def.Title,
			Explanation: def.Explanation,
			Fixes:       def.Fixes,
			Examples:    def.Examples,
			Severity:    sev,
			Frameworks:  def.Frameworks,
		}

		if def.MinRuntime != "" {
			gate, err := rule.NewVersionGate(def.MinRuntime)
			if err != nil {
				return nil, errors.NewRuleError(path, def.ID, "min_runtime", err).
					WithHint("Version gates use semver constraint syntax, e.g. \">= 18.0.0\"")
			}
			r.Runtime = gate
		}

		rules = append(rules, r)
	}
	return rules, nil
}

// compileMatch builds the predicate from the declared clauses.
func compileMatch(path, id string, def matchDef) (rule.Matcher, error) {
	if def.empty() {
		return nil, errors.NewRuleError(path, id, "match", nil).
			WithHint("Declare at least one clause: message_contains, message_regex, name_is, stack_contains")
	}

	var parts []rule.Matcher
	if len(def.MessageContains) > 0 {
		parts = append(parts, rule.MessageContains(def.MessageContains...))
	}
	if def.MessageRegex != "" {
		re, err := regexp.Compile(def.MessageRegex)
		if err != nil {
			return nil, errors.NewRuleError(path, id, "message_regex", err)
		}
		parts = append(parts, rule.MessageMatches(re))
	}
	if len(def.NameIs) > 0 {
		parts = append(parts, rule.NameIs(def.NameIs...))
	}
	if len(def.StackContains) > 0 {
		parts = append(parts, rule.StackContains(def.StackContains...))
	}

	if len(parts) == 1 {
		return parts[0], nil
	}
	return rule.All(parts...), nil
}

func categoryList() string {
	cats := rule.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
