package catalog

import "github.com/errdoc-dev/errdoc/internal/rule"

func nodejsRules() []*rule.Rule {
	return []*rule.Rule{
		{
			ID:       "node-module-not-found",
			Name:     "Module not found",
			Category: rule.CategoryNodeJS,
			Match:    rule.MessageContains("cannot find module"),
			Title:    "Cannot find module",
			Explanation: "Node could not resolve a required or imported module. Either the " +
				"package is not installed, the path is wrong, or the file extension is " +
				"missing in an ESM import.",
			Fixes: []string{
				"Install the package: npm install <name>",
				"Check the relative path and file extension; ESM imports require explicit extensions",
				"Delete node_modules and the lockfile, then reinstall",
			},
			Examples: []string{
				"Error: Cannot find module 'exress'\n// typo: should be 'express'",
			},
			Severity: rule.SeverityCritical,
		},
		{
			ID:       "node-import-outside-module",
			Name:     "import outside a module",
			Category: rule.CategoryNodeJS,
			Match:    rule.MessageContains("cannot use import statement outside a module"),
			Title:    "Cannot use import statement outside a module",
			Explanation: "ESM `import` syntax was used in a file Node treats as CommonJS. " +
				"Node decides per file based on the extension and the nearest package.json " +
				"\"type\" field.",
			Fixes: []string{
				"Add \"type\": \"module\" to package.json",
				"Rename the file to .mjs",
				"Or use require() if the project is CommonJS",
			},
			Severity: rule.SeverityMedium,
		},
		{
			ID:       "node-addr-in-use",
			Name:     "Port already in use",
			Category: rule.CategoryNodeJS,
			Match:    rule.MessageContains("eaddrinuse"),
			Title:    "EADDRINUSE",
			Explanation: "The server tried to bind a port that another process already holds. " +
				"Often a previous instance of the same server is still running.",
			Fixes: []string{
				"Find the process holding the port: lsof -i :<port>",
				"Stop the previous instance or pick another port",
				"Let the OS assign a free port by listening on 0",
			},
			Severity:   rule.SeverityHigh,
			Frameworks: []string{"express", "fastify"},
		},
		{
			ID:       "node-enoent",
			Name:     "File or directory not found",
			Category: rule.CategoryNodeJS,
			Match:    rule.MessageContains("enoent"),
			Title:    "ENOENT",
			Explanation: "A filesystem call referenced a path that does not exist. Relative " +
				"paths resolve against the process working directory, not the source file.",
			Fixes: []string{
				"Resolve paths against import.meta.dirname (or __dirname) instead of the CWD",
				"Check for typos in the path",
				"Create the directory before writing files into it",
			},
			Severity: rule.SeverityMedium,
		},
		{
			ID:       "node-eacces",
			Name:     "Permission denied",
			Category: rule.CategoryNodeJS,
			Match:    rule.MessageContains("eacces", "eperm"),
			Title:    "EACCES",
			Explanation: "The process lacks permission for a file, directory, or low port. " +
				"Binding ports below 1024 requires elevated privileges on most systems.",
			Fixes: []string{
				"Use a port above 1024 during development",
				"Fix ownership of the file or directory: chown/chmod",
				"Avoid running npm installs with sudo; fix the npm prefix instead",
			},
			Severity: rule.SeverityMedium,
		},
		{
			ID:       "node-top-level-await",
			Name:     "Top-level await unsupported",
			Category: rule.CategoryNodeJS,
			Match:    rule.MessageContains("await is only valid in async function"),
			// Top-level await landed in 14.8; on older runtimes the syntax
			// error is about the runtime, not the code structure.
			Runtime: rule.MustVersionGate("< 14.8.0"),
			Title:   "await is only valid in async function",
			Explanation: "This Node version does not support top-level await. The syntax is " +
				"available from Node 14.8 in ES modules only.",
			Fixes: []string{
				"Upgrade Node to >= 14.8",
				"Wrap the await in an async IIFE: (async () => { ... })()",
			},
			Severity: rule.SeverityHigh,
		},
	}
}
