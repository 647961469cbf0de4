package catalog

import "github.com/errdoc-dev/errdoc/internal/rule"

func javascriptRules() []*rule.Rule {
	return []*rule.Rule{
		{
			ID:       "js-undefined-property",
			Name:     "Undefined property access",
			Category: rule.CategoryJavaScript,
			Match: rule.MessageContains(
				"cannot read properties of undefined",
				"cannot read properties of null",
				"cannot read property",
			),
			Title: "Cannot read properties of undefined",
			Explanation: "The code accessed a property on a value that is undefined or null. " +
				"This usually means a variable was never assigned, an object lookup missed, " +
				"or data arrived later than the code expected.",
			Fixes: []string{
				"Use optional chaining: obj?.prop instead of obj.prop",
				"Guard the access: if (obj) { obj.prop }",
				"Check where the value should have been assigned; it may be an async result that has not resolved yet",
				"Provide a default: const items = data.items ?? []",
			},
			Examples: []string{
				"const user = undefined;\nuser.name; // TypeError",
				"const name = user?.profile?.name ?? \"anonymous\";",
			},
			Severity: rule.SeverityHigh,
		},
		{
			ID:       "js-not-a-function",
			Name:     "TypeError: not a function",
			Category: rule.CategoryJavaScript,
			Match:    rule.MessageContains("is not a function"),
			Title:    "is not a function",
			Explanation: "Something was called like a function but is not one. Common causes: " +
				"a typo in the method name, a value shadowing the function, or a module " +
				"imported with the wrong form (default vs named export).",
			Fixes: []string{
				"Check the spelling of the method name",
				"Log the value before calling it: console.log(typeof fn)",
				"Check the import form: `import x from` vs `import { x } from`",
			},
			Examples: []string{
				"const nums = 42;\nnums.map(n => n); // TypeError: nums.map is not a function",
			},
			Severity: rule.SeverityHigh,
		},
		{
			ID:       "js-not-defined",
			Name:     "ReferenceError: variable not defined",
			Category: rule.CategoryJavaScript,
			Match:    rule.All(rule.NameIs("ReferenceError"), rule.MessageContains("is not defined")),
			Title:    "is not defined",
			Explanation: "An identifier was used that does not exist in any reachable scope. " +
				"Either it was never declared, it is declared in another module and not " +
				"imported, or it is a browser/Node global used in the wrong environment.",
			Fixes: []string{
				"Declare the variable before use",
				"Add the missing import",
				"Check for environment-specific globals (window vs global vs globalThis)",
			},
			Examples: []string{
				"console.log(countr); // ReferenceError: countr is not defined",
			},
			Severity: rule.SeverityHigh,
		},
		{
			ID:       "js-const-assignment",
			Name:     "Assignment to constant",
			Category: rule.CategoryJavaScript,
			Match:    rule.MessageContains("assignment to constant variable"),
			Title:    "Assignment to constant variable",
			Explanation: "A variable declared with const was reassigned. const bindings are " +
				"immutable; only the binding is frozen, not the object it points to.",
			Fixes: []string{
				"Declare the variable with let if it needs reassignment",
				"If mutating object contents, mutate properties instead of reassigning the binding",
			},
			Examples: []string{
				"const limit = 10;\nlimit = 20; // TypeError: Assignment to constant variable",
			},
			Severity: rule.SeverityMedium,
		},
		{
			ID:       "js-stack-overflow",
			Name:     "RangeError: call stack exceeded",
			Category: rule.CategoryJavaScript,
			Match:    rule.MessageContains("maximum call stack size exceeded"),
			Title:    "Maximum call stack size exceeded",
			Explanation: "A function recursed without a base case, or two functions call each " +
				"other in a loop. The runtime ran out of stack frames.",
			Fixes: []string{
				"Add or fix the base case of the recursion",
				"Check for accidental self-calls, e.g. a getter calling itself",
				"Convert deep recursion to iteration for large inputs",
			},
			Examples: []string{
				"function f() { return f(); }\nf(); // RangeError",
			},
			Severity: rule.SeverityCritical,
		},
		{
			ID:       "js-invalid-array-length",
			Name:     "RangeError: invalid array length",
			Category: rule.CategoryJavaScript,
			Match:    rule.MessageContains("invalid array length"),
			Title:    "Invalid array length",
			Explanation: "An Array was constructed or resized with a negative number or a value " +
				"above 2^32-1. This often comes from an unvalidated arithmetic result.",
			Fixes: []string{
				"Validate the length before constructing the array",
				"Check the arithmetic producing the length for underflow",
			},
			Severity: rule.SeverityMedium,
		},
	}
}
