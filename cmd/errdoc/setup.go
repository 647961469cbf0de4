package main

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/errdoc-dev/errdoc/internal/catalog"
	"github.com/errdoc-dev/errdoc/internal/config"
	"github.com/errdoc-dev/errdoc/internal/engine"
)

// buildEngine constructs a fresh engine from the builtin catalog plus any
// custom rule files, appended in flag order.
func buildEngine(ruleFiles []string) (*engine.Engine, error) {
	eng := engine.New(catalog.Rules())
	for _, f := range ruleFiles {
		rules, err := config.Load(f)
		if err != nil {
			return nil, err
		}
		eng.Append(rules...)
	}
	return eng, nil
}

// colorDisabled reports whether colored output should be off: the flag, or a
// non-terminal stdout.
func colorDisabled() bool {
	if noColor {
		return true
	}
	return !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
}
