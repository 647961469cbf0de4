//go:build e2e

package e2e

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func rulesTests() {
	Context("Rules Command", func() {
		It("lists the builtin catalog", func() {
			output, err := Exec("rules")
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(ContainSubstring("ID"))
			Expect(output).To(ContainSubstring("js-undefined-property"))
			Expect(output).To(ContainSubstring("net-connection-refused"))
		})

		It("filters by category", func() {
			output, err := Exec("rules", "--category", "react")
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(ContainSubstring("react-invalid-hook-call"))
			Expect(output).NotTo(ContainSubstring("js-undefined-property"))
		})

		It("rejects an unknown category with a hint", func() {
			output, err := Exec("rules", "--category", "cobol")
			Expect(err).To(HaveOccurred())
			Expect(output).To(ContainSubstring("unknown category"))
			Expect(output).To(ContainSubstring("Valid categories"))
		})

		It("selects a single rule by id as JSON", func() {
			output, err := Exec("rules", "js-stack-overflow", "-o", "json")
			Expect(err).NotTo(HaveOccurred())

			var decoded []map[string]any
			Expect(json.Unmarshal([]byte(output), &decoded)).To(Succeed())
			Expect(decoded).To(HaveLen(1))
			Expect(decoded[0]["id"]).To(Equal("js-stack-overflow"))
		})
	})
}
