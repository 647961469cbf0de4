package report

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// v8FrameRe matches V8-style frames: "    at fn (file:line:col)" and
// "    at file:line:col".
var v8FrameRe = regexp.MustCompile(`^\s*at\s+(?:.+\s+\()?(.+?):(\d+):(\d+)\)?\s*$`)

// geckoFrameRe matches Firefox/Safari-style frames: "fn@file:line:col".
var geckoFrameRe = regexp.MustCompile(`^\s*\S*@(.+?):(\d+):(\d+)\s*$`)

// Parse interprets raw input as an error report. Input starting with "{" is
// decoded as a serialized error object; anything else is treated as raw
// stack-trace text.
func Parse(data []byte) (Report, *Context, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var r Report
		if err := json.Unmarshal([]byte(trimmed), &r); err != nil {
			return Report{}, nil, err
		}
		return r, contextFromStack(r.Stack), nil
	}
	r := ParseStack(trimmed)
	return r, contextFromStack(r.Stack), nil
}

// ParseStack builds a Report from raw stack-trace text. The first line is
// split on "Name: message"; lines that look like frames become the stack.
// Text without a recognizable error-class prefix becomes a bare message.
func ParseStack(text string) Report {
	text = strings.TrimSpace(text)
	if text == "" {
		return Report{}
	}

	lines := strings.SplitN(text, "\n", 2)
	head := strings.TrimSpace(lines[0])

	r := Report{Message: head, Stack: text}
	if name, msg, ok := strings.Cut(head, ":"); ok && isErrorClass(strings.TrimSpace(name)) {
		r.Name = strings.TrimSpace(name)
		r.Message = strings.TrimSpace(msg)
	}
	return r
}

// isErrorClass reports whether s looks like a JavaScript error class name:
// a single identifier ending in "Error" or "Exception", or a known
// non-conforming class such as DOMException aliases.
func isErrorClass(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t/\\") {
		return false
	}
	return strings.HasSuffix(s, "Error") || strings.HasSuffix(s, "Exception")
}

// contextFromStack derives position and environment hints from stack text.
// Returns nil when the stack yields nothing.
func contextFromStack(stack string) *Context {
	if stack == "" {
		return nil
	}

	ctx := &Context{Environment: detectEnvironment(stack)}
	for line := range strings.SplitSeq(stack, "\n") {
		m := v8FrameRe.FindStringSubmatch(line)
		if m == nil {
			m = geckoFrameRe.FindStringSubmatch(line)
		}
		if m == nil {
			continue
		}
		ctx.Code = m[1]
		ctx.Line, _ = strconv.Atoi(m[2])
		ctx.Column, _ = strconv.Atoi(m[3])
		break
	}

	if ctx.Environment == "" && ctx.Code == "" {
		return nil
	}
	return ctx
}

// detectEnvironment guesses the runtime from stack frame paths.
func detectEnvironment(stack string) Environment {
	switch {
	case strings.Contains(stack, "node:internal") || strings.Contains(stack, "node_modules"):
		return EnvNode
	case strings.Contains(stack, "ext:deno") || strings.Contains(stack, "deno:"):
		return EnvDeno
	case strings.Contains(stack, "bun:"):
		return EnvBun
	case strings.Contains(stack, "http://") || strings.Contains(stack, "https://"):
		return EnvBrowser
	default:
		return ""
	}
}
