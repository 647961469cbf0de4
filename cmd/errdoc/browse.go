package main

import (
	"github.com/spf13/cobra"

	"github.com/errdoc-dev/errdoc/internal/ui"
)

var browseRuleFiles []string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the rule catalog interactively",
	Long: `Open an interactive browser over the rule catalog. Type / to filter,
enter to view a rule's explanation and fixes, q to quit.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringArrayVar(&browseRuleFiles, "rules", nil, "Custom rule file (.yaml or .cue); repeatable")
}

func runBrowse(_ *cobra.Command, _ []string) error {
	eng, err := buildEngine(browseRuleFiles)
	if err != nil {
		return err
	}
	return ui.Run(eng.Rules())
}
