// Package lookup is the legacy message table kept for backward
// compatibility. It predates the matching engine and runs independently of
// it: a flat, ordered list of message patterns with one-line explanations,
// resolved by first exact match, then first containing-substring match in
// declaration order. No scoring is involved.
package lookup

import "strings"

// Entry pairs a message pattern with its short explanation.
type Entry struct {
	Pattern     string
	Explanation string
}

// table order is significant: the first containing entry wins.
var table = []Entry{
	{"Cannot read properties of undefined", "Accessing a property on an undefined value."},
	{"Cannot read properties of null", "Accessing a property on a null value."},
	{"is not a function", "Calling a value that is not a function."},
	{"is not defined", "Using a variable that was never declared or imported."},
	{"Assignment to constant variable", "Reassigning a const binding."},
	{"Maximum call stack size exceeded", "Unbounded recursion."},
	{"Cannot find module", "Node could not resolve a required module."},
	{"Unexpected token", "Parsing failed; the input is not what the parser expected."},
	{"Unexpected end of JSON input", "JSON text was empty or truncated."},
	{"ECONNREFUSED", "Nothing is listening at the target host and port."},
	{"EADDRINUSE", "The port is already taken by another process."},
	{"ENOENT", "A file or directory does not exist."},
	{"ETIMEDOUT", "The peer did not respond in time."},
	{"Failed to fetch", "The browser could not complete a network request."},
	{"Invalid hook call", "A React hook ran outside a component render."},
	{"Unhandled promise rejection", "A promise rejected with no catch handler."},
}

// Explain resolves a message against the table. An exact match wins over any
// substring match; among substring matches the earliest entry wins.
func Explain(message string) (Entry, bool) {
	for _, e := range table {
		if strings.EqualFold(message, e.Pattern) {
			return e, true
		}
	}
	lowered := strings.ToLower(message)
	for _, e := range table {
		if strings.Contains(lowered, strings.ToLower(e.Pattern)) {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns a copy of the table in declaration order.
func Entries() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}
