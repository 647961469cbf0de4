package catalog

import "github.com/errdoc-dev/errdoc/internal/rule"

func networkRules() []*rule.Rule {
	return []*rule.Rule{
		{
			ID:       "net-connection-refused",
			Name:     "Connection refused",
			Category: rule.CategoryNetwork,
			Match:    rule.MessageContains("econnrefused"),
			Title:    "ECONNREFUSED",
			Explanation: "Nothing is listening at the target host and port. The service is " +
				"down, listening elsewhere, or the URL points at the wrong environment.",
			Fixes: []string{
				"Check that the target service is actually running",
				"Compare the port in the URL with the port the service listens on",
				"Inside containers, use the service hostname instead of localhost",
			},
			Severity: rule.SeverityHigh,
		},
		{
			ID:       "net-fetch-failed",
			Name:     "Fetch failed",
			Category: rule.CategoryNetwork,
			Match:    rule.MessageContains("failed to fetch", "networkerror when attempting to fetch"),
			Title:    "Failed to fetch",
			Explanation: "The browser could not complete a fetch. The request never produced " +
				"a response: offline, DNS failure, blocked by CORS preflight, or mixed " +
				"content (HTTP resource from an HTTPS page).",
			Fixes: []string{
				"Open the network tab; a CORS or mixed-content block shows there, not in the error",
				"Check the URL resolves and the server is reachable",
				"Serve the API over HTTPS when the page is HTTPS",
			},
			Severity: rule.SeverityMedium,
		},
		{
			ID:       "net-cors-blocked",
			Name:     "CORS policy block",
			Category: rule.CategoryNetwork,
			Match:    rule.MessageContains("blocked by cors policy", "access-control-allow-origin"),
			Title:    "blocked by CORS policy",
			Explanation: "The server did not grant the page's origin access. CORS is enforced " +
				"by the browser and fixed on the server: the response must carry the right " +
				"Access-Control-Allow-Origin header.",
			Fixes: []string{
				"Add the page origin to the server's allowed origins",
				"For credentials, set Access-Control-Allow-Credentials and a non-wildcard origin",
				"During development, proxy API calls through the dev server",
			},
			Severity: rule.SeverityHigh,
		},
		{
			ID:       "net-timeout",
			Name:     "Connection timed out",
			Category: rule.CategoryNetwork,
			Match:    rule.MessageContains("etimedout", "socket hang up", "econnreset"),
			Title:    "ETIMEDOUT",
			Explanation: "The connection was established but the peer stopped responding, or " +
				"never answered. Load balancers and idle-connection reaping are frequent " +
				"causes of hang-ups on long requests.",
			Fixes: []string{
				"Retry idempotent requests with backoff",
				"Raise the client timeout if the operation is legitimately slow",
				"Check keep-alive settings between client, proxy, and server",
			},
			Severity: rule.SeverityMedium,
		},
		{
			ID:       "net-dns-not-found",
			Name:     "Host not found",
			Category: rule.CategoryNetwork,
			Match:    rule.MessageContains("enotfound", "getaddrinfo"),
			Title:    "ENOTFOUND",
			Explanation: "DNS resolution failed for the hostname. Usually a typo in the host, " +
				"a missing /etc/hosts entry, or an internal name used outside its network.",
			Fixes: []string{
				"Check the hostname for typos",
				"Try resolving it manually: dig <host> or nslookup <host>",
				"VPN or split-DNS setups: confirm the internal zone is reachable",
			},
			Severity: rule.SeverityMedium,
		},
	}
}
