// Package hook wires the engine and renderer into process-level failure
// handling for embedding applications. It is a collaborator around the core,
// not part of it: it calls the engine, hands the result to the renderer, and
// applies the termination policy.
package hook

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/errdoc-dev/errdoc/internal/engine"
	"github.com/errdoc-dev/errdoc/internal/render"
	"github.com/errdoc-dev/errdoc/internal/report"
)

// Handler reports classified failures to a writer.
type Handler struct {
	engine    *engine.Engine
	explainer *render.Explainer
	out       io.Writer

	// exit is swappable for tests.
	exit func(code int)
}

// New creates a Handler writing to out. A nil engine uses the shared default
// instance.
func New(e *engine.Engine, explainer *render.Explainer, out io.Writer) *Handler {
	if e == nil {
		e = engine.Default()
	}
	if out == nil {
		out = os.Stderr
	}
	return &Handler{
		engine:    e,
		explainer: explainer,
		out:       out,
		exit:      os.Exit,
	}
}

// Report classifies and renders a failure report without terminating.
// Used on recoverable paths such as rejected work items.
func (h *Handler) Report(rep report.Report, ctx *report.Context) {
	m := h.engine.FindBestMatch(rep, ctx)
	fmt.Fprint(h.out, h.explainer.Explain(m, rep, ctx))
}

// Recover is meant to be deferred at the top of a goroutine or main. It
// converts a panic into a report, explains it, and then terminates the
// process. Terminating rather than continuing is a deliberate policy: after
// an uncaught failure the process state is suspect, and swallowing it would
// hide the crash from supervisors.
func (h *Handler) Recover() {
	v := recover()
	if v == nil {
		return
	}

	rep := report.Report{
		Name:    "panic",
		Message: fmt.Sprint(v),
		Stack:   string(debug.Stack()),
	}
	h.Report(rep, nil)
	h.exit(1)
}
