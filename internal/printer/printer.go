// Package printer renders rule listings and catalog statistics for the CLI:
// tabwriter tables for humans, JSON and YAML for machines.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-yaml"

	"github.com/errdoc-dev/errdoc/internal/engine"
	"github.com/errdoc-dev/errdoc/internal/rule"
)

// Output format names accepted by -o flags.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Common column header constants.
const (
	colID         = "ID"
	colName       = "NAME"
	colCategory   = "CATEGORY"
	colSeverity   = "SEVERITY"
	colFrameworks = "FRAMEWORKS"
)

// Rules prints a rule listing in the requested format. Table output is the
// default; wide adds the title and fix count columns.
func Rules(w io.Writer, rules []*rule.Rule, wide bool, format string) error {
	switch format {
	case FormatJSON:
		return printJSON(w, rules)
	case FormatYAML:
		return printYAML(w, rules)
	case FormatText, "":
		printRuleTable(w, rules, wide)
		return nil
	default:
		return fmt.Errorf("unknown output format %q, valid formats: text, json, yaml", format)
	}
}

// printRuleTable is the table pipeline: header, one row per rule in catalog
// order, flush.
func printRuleTable(w io.Writer, rules []*rule.Rule, wide bool) {
	if len(rules) == 0 {
		fmt.Fprintln(w, "No rules found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(ruleHeaders(wide), "\t"))
	for _, r := range rules {
		fmt.Fprintln(tw, strings.Join(ruleRow(r, wide), "\t"))
	}
	tw.Flush()
}

func ruleHeaders(wide bool) []string {
	h := []string{colID, colName, colCategory, colSeverity, colFrameworks}
	if wide {
		h = append(h, "TITLE", "FIXES")
	}
	return h
}

func ruleRow(r *rule.Rule, wide bool) []string {
	frameworks := "-"
	if len(r.Frameworks) > 0 {
		frameworks = strings.Join(r.Frameworks, ",")
	}
	row := []string{r.ID, r.Name, string(r.Category), r.Severity.String(), frameworks}
	if wide {
		row = append(row, r.Title, strconv.Itoa(len(r.Fixes)))
	}
	return row
}

// Stats prints catalog statistics in the requested format.
func Stats(w io.Writer, s engine.Stats, format string) error {
	switch format {
	case FormatJSON:
		return printJSON(w, s)
	case FormatYAML:
		return printYAML(w, s)
	case FormatText, "":
		printStatsText(w, s)
		return nil
	default:
		return fmt.Errorf("unknown output format %q, valid formats: text, json, yaml", format)
	}
}

func printStatsText(w io.Writer, s engine.Stats) {
	fmt.Fprintf(w, "Total rules: %d\n", s.TotalRules)

	fmt.Fprintln(w, "\nBy category:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	// Closed set: iterate in canonical order instead of sorting keys.
	for _, c := range rule.Categories() {
		if n := s.ByCategory[c]; n > 0 {
			fmt.Fprintf(tw, "  %s\t%d\n", c, n)
		}
	}
	tw.Flush()

	fmt.Fprintln(w, "\nBy severity:")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, sev := range rule.Severities() {
		if n := s.BySeverity[sev.String()]; n > 0 {
			fmt.Fprintf(tw, "  %s\t%d\n", sev, n)
		}
	}
	if n := s.BySeverity[rule.SeverityUnknown.String()]; n > 0 {
		fmt.Fprintf(tw, "  unknown\t%d\n", n)
	}
	tw.Flush()

	if len(s.ByFramework) > 0 {
		fmt.Fprintln(w, "\nBy framework:")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, f := range sortedKeys(s.ByFramework) {
			fmt.Fprintf(tw, "  %s\t%d\n", f, s.ByFramework[f])
		}
		tw.Flush()
	}
}

// sortedKeys returns the keys of a map sorted alphabetically.
func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// printJSON outputs a value as indented JSON.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// printYAML outputs a value as YAML.
func printYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}
