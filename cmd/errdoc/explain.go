package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/errdoc-dev/errdoc/internal/engine"
	"github.com/errdoc-dev/errdoc/internal/errors"
	"github.com/errdoc-dev/errdoc/internal/lookup"
	"github.com/errdoc-dev/errdoc/internal/render"
	"github.com/errdoc-dev/errdoc/internal/report"
)

var (
	explainFramework      string
	explainEnvironment    string
	explainRuntimeVersion string
	explainRuleFiles      []string
	explainFormat         string
	explainLegacy         bool
)

var explainCmd = &cobra.Command{
	Use:   "explain [file...]",
	Short: "Explain one or more error reports",
	Long: `Explain error reports against the rule catalog.

Each input is either a serialized error object ({"name","message","stack"})
or raw stack-trace text. Without file arguments the report is read from
stdin. Multiple files are processed concurrently; output order follows
argument order.

Examples:
  node app.js 2>&1 | errdoc explain
  errdoc explain crash.json other-crash.txt
  errdoc explain --framework react --rules team-rules.yaml crash.txt`,
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().StringVar(&explainFramework, "framework", "", "Framework hint, e.g. react or express")
	explainCmd.Flags().StringVar(&explainEnvironment, "runtime", "", "Runtime hint (browser, node, deno, bun)")
	explainCmd.Flags().StringVar(&explainRuntimeVersion, "runtime-version", "", "Runtime version hint, e.g. 18.17.0")
	explainCmd.Flags().StringArrayVar(&explainRuleFiles, "rules", nil, "Custom rule file (.yaml or .cue); repeatable")
	explainCmd.Flags().StringVarP(&explainFormat, "output", "o", outputText, "Output format (text, json)")
	explainCmd.Flags().BoolVar(&explainLegacy, "legacy", false, "Consult the legacy lookup table when no rule matches")
}

func runExplain(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine(explainRuleFiles)
	if err != nil {
		return err
	}
	explainer := render.NewExplainer(colorDisabled())

	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return errors.NewInputReadError("stdin", err)
		}
		out, err := explainOne(eng, explainer, "stdin", data)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	// Files are read and matched concurrently; rendered output is buffered
	// per input so the printed order stays deterministic.
	outputs := make([]string, len(args))
	var g errgroup.Group
	for i, path := range args {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return errors.NewInputReadError(path, err)
			}
			out, err := explainOne(eng, explainer, path, data)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, out := range outputs {
		if i > 0 && explainFormat != outputJSON {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
	}
	return nil
}

// explainOne parses a single report, runs the engine, and renders the
// result.
func explainOne(eng *engine.Engine, explainer *render.Explainer, source string, data []byte) (string, error) {
	rep, ctx, err := report.Parse(data)
	if err != nil {
		return "", errors.NewInputParseError(source, err).
			WithHint("Input must be an error object ({\"name\",\"message\",\"stack\"}) or raw stack-trace text")
	}
	ctx = mergeContextFlags(ctx)

	m := eng.FindBestMatch(rep, ctx)

	if explainFormat == outputJSON {
		out, err := explainer.ExplainJSON(m, rep, ctx)
		if err != nil {
			return "", err
		}
		return string(out) + "\n", nil
	}

	if m == nil && explainLegacy {
		if entry, ok := lookup.Explain(rep.Message); ok {
			return explainer.ExplainLegacy(entry, rep), nil
		}
	}
	return explainer.Explain(m, rep, ctx), nil
}

// mergeContextFlags overlays explicit flags on top of hints derived from the
// input. Flags win.
func mergeContextFlags(ctx *report.Context) *report.Context {
	if explainFramework == "" && explainEnvironment == "" && explainRuntimeVersion == "" {
		return ctx
	}
	if ctx == nil {
		ctx = &report.Context{}
	}
	if explainFramework != "" {
		ctx.Framework = explainFramework
	}
	if explainEnvironment != "" {
		ctx.Environment = report.Environment(explainEnvironment)
	}
	if explainRuntimeVersion != "" {
		ctx.RuntimeVersion = explainRuntimeVersion
	}
	return ctx
}
