package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var (
	debugMode bool
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "errdoc",
	Short: "Explain JavaScript runtime errors",
	Long: `Errdoc classifies runtime errors from JavaScript environments
(browser, Node, React) against a catalog of known failure patterns and
prints a plain-language explanation with suggested fixes.

Feed it an error as JSON or raw stack-trace text:
  node app.js 2>&1 | errdoc explain
  errdoc explain crash.txt
  errdoc rules --category react`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := slog.LevelWarn
		if debugMode {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		explainCmd,
		rulesCmd,
		statsCmd,
		browseCmd,
		versionCmd,
		completionCmd,
	)
}
