package catalog

import "github.com/errdoc-dev/errdoc/internal/rule"

func asyncRules() []*rule.Rule {
	return []*rule.Rule{
		{
			ID:       "async-unhandled-rejection",
			Name:     "Unhandled promise rejection",
			Category: rule.CategoryAsync,
			Match: rule.Any(
				rule.MessageContains("unhandled promise rejection", "unhandledpromiserejection"),
				rule.NameIs("UnhandledPromiseRejection"),
			),
			Title: "Unhandled promise rejection",
			Explanation: "A promise rejected and nothing caught it. In modern Node this " +
				"terminates the process. The original failure is the rejection reason, " +
				"not this wrapper message.",
			Fixes: []string{
				"Add .catch() or try/await around the failing promise",
				"Look at the rejection reason below this message for the real error",
				"Never fire-and-forget promises in request handlers",
			},
			Examples: []string{
				"fetchUser(); // rejection escapes\nawait fetchUser(); // caught by try/catch",
			},
			Severity: rule.SeverityCritical,
		},
		{
			ID:       "async-await-outside-async",
			Name:     "await outside async function",
			Category: rule.CategoryAsync,
			Match:    rule.MessageContains("await is only valid in async function"),
			Title:    "await is only valid in async function",
			Explanation: "await was used inside a plain function. Only async functions and " +
				"ES-module top level may await.",
			Fixes: []string{
				"Mark the enclosing function async",
				"At script top level, wrap in an async IIFE",
			},
			Severity: rule.SeverityMedium,
		},
		{
			ID:       "async-then-not-function",
			Name:     "TypeError: then is not a function",
			Category: rule.CategoryAsync,
			Match:    rule.MessageContains(".then is not a function"),
			Title:    ".then is not a function",
			Explanation: "A value was chained like a promise but is not one. The function " +
				"being awaited probably returns a plain value or a callback-style API.",
			Fixes: []string{
				"Check the function actually returns a promise",
				"Wrap callback APIs with util.promisify or new Promise",
			},
			Severity: rule.SeverityMedium,
		},
		{
			ID:       "async-callback-not-function",
			Name:     "TypeError: callback is not a function",
			Category: rule.CategoryAsync,
			Match:    rule.MessageContains("callback is not a function"),
			Title:    "callback is not a function",
			Explanation: "A callback-style API was invoked without its callback argument, or " +
				"with a non-function in that position. Often caused by mixing promise and " +
				"callback calling conventions of the same API.",
			Fixes: []string{
				"Pass a function as the last argument",
				"Or switch to the promise form of the API if one exists",
			},
			Severity: rule.SeverityMedium,
		},
	}
}
