package catalog_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/errdoc-dev/errdoc/internal/catalog"
	"github.com/errdoc-dev/errdoc/internal/engine"
	"github.com/errdoc-dev/errdoc/internal/report"
	"github.com/errdoc-dev/errdoc/internal/rule"
)

var categoryPrefixes = map[rule.Category]string{
	rule.CategoryJavaScript: "js-",
	rule.CategoryNodeJS:     "node-",
	rule.CategoryReact:      "react-",
	rule.CategoryNetwork:    "net-",
	rule.CategoryAsync:      "async-",
	rule.CategoryJSON:       "json-",
}

var _ = Describe("Builtin catalog", func() {
	var rules []*rule.Rule

	BeforeEach(func() {
		rules = catalog.Rules()
	})

	It("is not empty", func() {
		Expect(rules).NotTo(BeEmpty())
	})

	It("has unique rule IDs", func() {
		seen := map[string]bool{}
		for _, r := range rules {
			Expect(seen).NotTo(HaveKey(r.ID), "duplicate id %s", r.ID)
			seen[r.ID] = true
		}
	})

	It("names every rule with id, name and category prefix", func() {
		for _, r := range rules {
			Expect(r.ID).NotTo(BeEmpty())
			Expect(r.Name).NotTo(BeEmpty())
			Expect(r.Category.Valid()).To(BeTrue(), "rule %s", r.ID)
			Expect(strings.HasPrefix(r.ID, categoryPrefixes[r.Category])).To(BeTrue(),
				"rule %s should carry the %s prefix", r.ID, categoryPrefixes[r.Category])
		}
	})

	It("gives every rule a predicate, explanation and at least one fix", func() {
		for _, r := range rules {
			Expect(r.Match).NotTo(BeNil(), "rule %s", r.ID)
			Expect(r.Explanation).NotTo(BeEmpty(), "rule %s", r.ID)
			Expect(r.Fixes).NotTo(BeEmpty(), "rule %s", r.ID)
		}
	})

	It("declares only valid severities", func() {
		for _, r := range rules {
			Expect(r.Severity.Valid()).To(BeTrue(), "rule %s has severity %q", r.ID, r.Severity)
		}
	})

	It("returns a fresh slice in a stable order", func() {
		again := catalog.Rules()
		Expect(again).To(HaveLen(len(rules)))
		for i := range rules {
			Expect(again[i].ID).To(Equal(rules[i].ID))
		}
	})
})

var _ = Describe("Classification against the builtin catalog", func() {
	var eng *engine.Engine

	BeforeEach(func() {
		eng = engine.New(catalog.Rules())
	})

	It("classifies an undefined property access with high confidence", func() {
		m := eng.FindBestMatch(report.Report{
			Name:    "TypeError",
			Message: "Cannot read properties of undefined (reading 'map')",
		}, nil)

		Expect(m).NotTo(BeNil())
		Expect(m.Rule.ID).To(Equal("js-undefined-property"))
		Expect(m.Confidence).To(BeNumerically(">=", 0.8))
	})

	It("classifies a refused connection without any context", func() {
		m := eng.FindBestMatch(report.Report{
			Name:    "Error",
			Message: "connect ECONNREFUSED 127.0.0.1:5432",
		}, nil)

		Expect(m).NotTo(BeNil())
		Expect(m.Rule.ID).To(Equal("net-connection-refused"))
		Expect(m.Confidence).To(BeNumerically("~", 0.85, 1e-9))
	})

	It("returns nil for an unrecognized message", func() {
		m := eng.FindBestMatch(report.Report{
			Message: "xyz totally unrecognized condition qqq",
		}, nil)
		Expect(m).To(BeNil())
	})

	It("raises confidence by the full framework bonus below the ceiling", func() {
		// The hydration rule fires on this message without a title hit, so
		// both scores stay under 1.0 and the whole +0.2 is observable.
		rep := report.Report{Message: "Text content does not match server-rendered HTML."}

		plain := eng.FindBestMatch(rep, nil)
		hinted := eng.FindBestMatch(rep, &report.Context{Framework: "react"})

		Expect(plain).NotTo(BeNil())
		Expect(hinted).NotTo(BeNil())
		Expect(hinted.Rule.ID).To(Equal("react-hydration-mismatch"))
		Expect(plain.Confidence).To(BeNumerically("~", 0.55, 1e-9))
		Expect(hinted.Confidence).To(BeNumerically("~", 0.75, 1e-9))
		Expect(hinted.Confidence - plain.Confidence).To(BeNumerically("~", 0.2, 1e-9))
	})

	It("clamps the framework bonus at full confidence", func() {
		// Title and severity bonuses already put this message at 0.85; the
		// framework hint can only lift it to the 1.0 ceiling.
		rep := report.Report{Message: "Invalid hook call. Hooks can only be called inside of the body of a function component."}

		plain := eng.FindBestMatch(rep, nil)
		hinted := eng.FindBestMatch(rep, &report.Context{Framework: "react"})

		Expect(plain).NotTo(BeNil())
		Expect(hinted).NotTo(BeNil())
		Expect(hinted.Rule.ID).To(Equal("react-invalid-hook-call"))
		Expect(plain.Confidence).To(BeNumerically("~", 0.85, 1e-9))
		Expect(hinted.Confidence).To(BeNumerically("~", 1.0, 1e-9))
	})

	It("classifies JSON parse failures by name and message together", func() {
		m := eng.FindBestMatch(report.Report{
			Name:    "SyntaxError",
			Message: "Unexpected token < in JSON at position 0",
		}, nil)

		Expect(m).NotTo(BeNil())
		Expect(m.Rule.ID).To(Equal("json-unexpected-token"))
	})

	It("gates the top-level await rule on the runtime version", func() {
		rep := report.Report{
			Name:    "SyntaxError",
			Message: "await is only valid in async function",
		}

		old := eng.FindBestMatch(rep, &report.Context{RuntimeVersion: "12.22.0"})
		modern := eng.FindBestMatch(rep, &report.Context{RuntimeVersion: "20.11.0"})

		Expect(old).NotTo(BeNil())
		Expect(old.Rule.ID).To(Equal("node-top-level-await"))
		Expect(modern).NotTo(BeNil())
		// On modern runtimes the version-gated rule drops out and the
		// general async rule takes over.
		Expect(modern.Rule.ID).To(Equal("async-await-outside-async"))
	})

	It("never reports confidence outside [0, 1]", func() {
		messages := []string{
			"Cannot read properties of undefined (reading 'x')",
			"foo is not a function",
			"connect ECONNREFUSED 10.0.0.1:80",
			"Unexpected end of JSON input",
			"listen EADDRINUSE: address already in use :::3000",
		}
		for _, msg := range messages {
			m := eng.FindBestMatch(report.Report{Name: "Error", Message: msg}, &report.Context{Framework: "react"})
			if m == nil {
				continue
			}
			Expect(m.Confidence).To(BeNumerically(">=", 0.0))
			Expect(m.Confidence).To(BeNumerically("<=", 1.0))
		}
	})
})
