//go:build e2e

package e2e

import (
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func explainTests() {
	Context("Explain Command", func() {
		It("explains an error object from stdin", func() {
			By("Piping a serialized TypeError into errdoc explain")
			output, err := ExecStdin(
				`{"name": "TypeError", "message": "Cannot read properties of undefined (reading 'map')"}`,
				"explain",
			)
			Expect(err).NotTo(HaveOccurred())

			By("Checking the winning rule is rendered")
			Expect(output).To(ContainSubstring("Undefined property access"))
			Expect(output).To(ContainSubstring("Matched rule: js-undefined-property"))
		})

		It("explains raw stack-trace text", func() {
			By("Piping raw stack text into errdoc explain")
			stack := "ReferenceError: foo is not defined\n" +
				"    at main (/app/src/index.js:3:1)"
			output, err := ExecStdin(stack, "explain")
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(ContainSubstring("ReferenceError"))
			Expect(output).To(ContainSubstring("Matched rule: js-not-defined"))
		})

		It("falls back gracefully on an unrecognized error", func() {
			output, err := ExecStdin("xyz totally unrecognized condition qqq", "explain")
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(ContainSubstring("Unknown error"))
		})

		It("emits machine-readable JSON with -o json", func() {
			output, err := ExecStdin(
				`{"name": "Error", "message": "connect ECONNREFUSED 127.0.0.1:5432"}`,
				"explain", "-o", "json",
			)
			Expect(err).NotTo(HaveOccurred())

			var decoded map[string]any
			Expect(json.Unmarshal([]byte(output), &decoded)).To(Succeed())
			Expect(decoded["matched"]).To(BeTrue())
			Expect(decoded["confidence"]).To(BeNumerically(">=", 0.8))
		})

		It("loads custom rule files", func() {
			By("Writing a custom YAML rule file")
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "team.yaml")
			ruleFile := `rules:
  - id: team-payment-declined
    name: Payment declined
    category: network
    title: payment declined
    explanation: The payment provider rejected the charge.
    fixes: ["Check the provider dashboard"]
    match:
      message_contains: [payment declined]
`
			Expect(os.WriteFile(path, []byte(ruleFile), 0o644)).To(Succeed())

			By("Explaining a report only the custom rule matches")
			output, err := ExecStdin("Error: payment declined by issuer", "explain", "--rules", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(ContainSubstring("team-payment-declined"))
		})

		It("fails with a structured error on unreadable input", func() {
			output, err := Exec("explain", "/no/such/file.json")
			Expect(err).To(HaveOccurred())
			Expect(output).To(ContainSubstring("E101"))
		})
	})
}
