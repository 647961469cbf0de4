// Package report defines the error-report value the matching engine consumes,
// along with parsers for the shapes errors actually arrive in: serialized
// error objects and raw stack-trace text.
package report

// Report is the minimal error-like value the engine matches against: what a
// JavaScript runtime knows about a thrown error. A missing message is treated
// as the empty string everywhere, so predicates built on substring search
// never need defensive checks.
type Report struct {
	// Name is the error class name, e.g. "TypeError" or "RangeError".
	Name string `json:"name"`

	// Message is the error message text.
	Message string `json:"message"`

	// Stack is the raw stack-trace text, when available.
	Stack string `json:"stack,omitempty"`
}

// Environment identifies the JavaScript runtime a report came from.
type Environment string

const (
	EnvBrowser Environment = "browser"
	EnvNode    Environment = "node"
	EnvDeno    Environment = "deno"
	EnvBun     Environment = "bun"
)

// Context carries caller-supplied hints about where an error occurred.
// Every field is optional. Hints only influence confidence scoring and
// version-gated predicates; they never exclude a rule from consideration.
type Context struct {
	// Framework names the framework in use, e.g. "react" or "express".
	Framework string `json:"framework,omitempty"`

	// Environment is the runtime the error was observed in.
	Environment Environment `json:"environment,omitempty"`

	// RuntimeVersion is the runtime's semantic version, e.g. "18.17.0".
	// Rules authored with a version gate consult it; when empty the gate
	// passes.
	RuntimeVersion string `json:"runtimeVersion,omitempty"`

	// Code is a source snippet or URL associated with the error.
	Code string `json:"code,omitempty"`

	// Line and Column locate the error in the source, when known.
	Line   int `json:"line,omitempty"`
	Column int `json:"column,omitempty"`
}
