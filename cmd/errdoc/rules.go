package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/errdoc-dev/errdoc/internal/errors"
	"github.com/errdoc-dev/errdoc/internal/printer"
	"github.com/errdoc-dev/errdoc/internal/rule"
)

var (
	rulesCategory  string
	rulesFramework string
	rulesRuleFiles []string
	rulesFormat    string
	rulesWide      bool
)

var rulesCmd = &cobra.Command{
	Use:   "rules [id]",
	Short: "List catalog rules",
	Long: `List the rules in the catalog, optionally filtered.

Examples:
  errdoc rules
  errdoc rules --category react
  errdoc rules --framework express -o json
  errdoc rules js-undefined-property`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().StringVar(&rulesCategory, "category", "", "Filter by category")
	rulesCmd.Flags().StringVar(&rulesFramework, "framework", "", "Filter by framework")
	rulesCmd.Flags().StringArrayVar(&rulesRuleFiles, "rules", nil, "Custom rule file (.yaml or .cue); repeatable")
	rulesCmd.Flags().StringVarP(&rulesFormat, "output", "o", outputText, "Output format (text, json, yaml)")
	rulesCmd.Flags().BoolVarP(&rulesWide, "wide", "w", false, "Show additional columns")
}

func runRules(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine(rulesRuleFiles)
	if err != nil {
		return err
	}

	var rules []*rule.Rule
	switch {
	case rulesCategory != "":
		cat := rule.Category(rulesCategory)
		if !cat.Valid() {
			return errors.New(errors.CategoryCatalog, fmt.Sprintf("unknown category %q", rulesCategory)).
				WithHint("Valid categories: javascript, nodejs, react, network, async, json")
		}
		rules = eng.ByCategory(cat)
	case rulesFramework != "":
		rules = eng.ByFramework(rulesFramework)
	default:
		rules = eng.Rules()
	}

	if len(args) == 1 {
		rules = filterByID(rules, args[0])
	}

	return printer.Rules(cmd.OutOrStdout(), rules, rulesWide, rulesFormat)
}

func filterByID(rules []*rule.Rule, id string) []*rule.Rule {
	for _, r := range rules {
		if r.ID == id {
			return []*rule.Rule{r}
		}
	}
	return nil
}
