package main

import (
	"github.com/spf13/cobra"

	"github.com/errdoc-dev/errdoc/internal/printer"
)

var (
	statsRuleFiles []string
	statsFormat    string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	Long: `Show aggregate counts over the rule catalog: total rules, rules per
category, per severity tier, and per framework.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringArrayVar(&statsRuleFiles, "rules", nil, "Custom rule file (.yaml or .cue); repeatable")
	statsCmd.Flags().StringVarP(&statsFormat, "output", "o", outputText, "Output format (text, json, yaml)")
}

func runStats(cmd *cobra.Command, _ []string) error {
	eng, err := buildEngine(statsRuleFiles)
	if err != nil {
		return err
	}
	return printer.Stats(cmd.OutOrStdout(), eng.Stats(), statsFormat)
}
