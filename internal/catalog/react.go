package catalog

import "github.com/errdoc-dev/errdoc/internal/rule"

func reactRules() []*rule.Rule {
	return []*rule.Rule{
		{
			ID:       "react-invalid-hook-call",
			Name:     "Invalid hook call",
			Category: rule.CategoryReact,
			Match:    rule.MessageContains("invalid hook call"),
			Title:    "Invalid hook call",
			Explanation: "A hook ran outside a function component's render. Hooks must be " +
				"called unconditionally at the top level of a component or another hook. " +
				"A duplicated copy of React in node_modules triggers the same error.",
			Fixes: []string{
				"Move the hook call to the top level of the component",
				"Do not call hooks inside loops, conditions, or event handlers",
				"Check for duplicate React copies: npm ls react",
			},
			Examples: []string{
				"if (open) {\n  const [v, setV] = useState(0); // invalid\n}",
			},
			Severity:   rule.SeverityHigh,
			Frameworks: []string{"react"},
		},
		{
			ID:       "react-object-as-child",
			Name:     "Object rendered as child",
			Category: rule.CategoryReact,
			Match:    rule.MessageContains("objects are not valid as a react child"),
			Title:    "Objects are not valid as a React child",
			Explanation: "JSX tried to render a plain object. React can render strings, " +
				"numbers, and elements; an object usually means a field access was " +
				"forgotten, or a Promise or Date was interpolated directly.",
			Fixes: []string{
				"Render a field of the object instead: {user.name} not {user}",
				"Stringify for debugging: {JSON.stringify(user)}",
				"Await async data before rendering it",
			},
			Severity:   rule.SeverityHigh,
			Frameworks: []string{"react"},
		},
		{
			ID:       "react-too-many-rerenders",
			Name:     "Too many re-renders",
			Category: rule.CategoryReact,
			Match:    rule.MessageContains("too many re-renders"),
			Title:    "Too many re-renders",
			Explanation: "A state update ran during render, which scheduled another render, " +
				"in a loop. The classic cause is calling a setter directly in JSX instead " +
				"of passing a handler.",
			Fixes: []string{
				"Pass a function to event props: onClick={() => setOpen(true)} not onClick={setOpen(true)}",
				"Move state updates into effects or handlers, never the render body",
			},
			Examples: []string{
				"<button onClick={setCount(count + 1)}> // runs during render",
			},
			Severity:   rule.SeverityHigh,
			Frameworks: []string{"react"},
		},
		{
			ID:       "react-missing-key",
			Name:     "Missing list key",
			Category: rule.CategoryReact,
			Match:    rule.MessageContains("unique \"key\" prop"),
			Title:    "unique \"key\" prop",
			Explanation: "Each element of a rendered list needs a stable key so React can " +
				"reconcile items across renders. Index keys work but break reordering.",
			Fixes: []string{
				"Use a stable identifier from the data as the key",
				"Avoid the array index as a key when items can be reordered or removed",
			},
			Severity:   rule.SeverityLow,
			Frameworks: []string{"react"},
		},
		{
			ID:       "react-hydration-mismatch",
			Name:     "Hydration mismatch",
			Category: rule.CategoryReact,
			Match:    rule.MessageContains("hydration failed", "text content does not match"),
			Title:    "Hydration failed",
			Explanation: "Server-rendered HTML differed from the first client render. Common " +
				"causes: rendering timestamps or random values, browser-only APIs during " +
				"render, or invalid HTML nesting the browser corrected.",
			Fixes: []string{
				"Move non-deterministic values (Date.now, Math.random) into effects",
				"Gate browser-only rendering behind a mounted flag",
				"Fix invalid nesting such as <p> inside <p>",
			},
			Severity:   rule.SeverityHigh,
			Frameworks: []string{"react", "next"},
		},
	}
}
