package catalog

import "github.com/errdoc-dev/errdoc/internal/rule"

func jsonRules() []*rule.Rule {
	return []*rule.Rule{
		{
			ID:       "json-unexpected-token",
			Name:     "SyntaxError in JSON.parse",
			Category: rule.CategoryJSON,
			Match: rule.All(
				rule.MessageContains("unexpected token"),
				rule.MessageContains("json"),
			),
			Title: "Unexpected token",
			Explanation: "JSON.parse received text that is not JSON. The classic case is an " +
				"HTML error page where an API response was expected: \"Unexpected token '<'\".",
			Fixes: []string{
				"Log the raw response body before parsing it",
				"Check the response status and Content-Type before JSON.parse",
				"An unexpected '<' means the server returned HTML, usually an error page",
			},
			Examples: []string{
				"const body = await res.text();\nif (!res.ok) throw new Error(body);\nconst data = JSON.parse(body);",
			},
			Severity: rule.SeverityHigh,
		},
		{
			ID:       "json-unexpected-end",
			Name:     "SyntaxError: truncated JSON",
			Category: rule.CategoryJSON,
			Match:    rule.MessageContains("unexpected end of json input"),
			Title:    "Unexpected end of JSON input",
			Explanation: "The JSON text ended mid-value. Either the input was empty (parsing " +
				"an empty string) or a response/file was truncated.",
			Fixes: []string{
				"Check for an empty body before parsing: 204 responses have none",
				"Confirm the producer finished writing before the consumer read",
			},
			Severity: rule.SeverityHigh,
		},
		{
			ID:       "json-circular-structure",
			Name:     "Circular structure in JSON.stringify",
			Category: rule.CategoryJSON,
			Match:    rule.MessageContains("circular structure"),
			Title:    "Converting circular structure to JSON",
			Explanation: "JSON.stringify hit an object that references itself. DOM nodes, " +
				"ORM entities, and request/response objects commonly contain cycles.",
			Fixes: []string{
				"Serialize a plain projection of the object instead of the object itself",
				"Use a replacer function to drop the cyclic fields",
			},
			Severity: rule.SeverityMedium,
		},
	}
}
