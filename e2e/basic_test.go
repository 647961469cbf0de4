//go:build e2e

package e2e

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func basicTests() {
	Context("Basic Commands", func() {
		It("displays version information", func() {
			By("Running errdoc version command")
			output, err := Exec("version")
			Expect(err).NotTo(HaveOccurred())

			By("Checking output contains version string")
			Expect(output).To(ContainSubstring("errdoc version"))
		})

		It("shows catalog statistics", func() {
			By("Running errdoc stats command")
			output, err := Exec("stats")
			Expect(err).NotTo(HaveOccurred())

			By("Checking aggregate sections are present")
			Expect(output).To(ContainSubstring("Total rules:"))
			Expect(output).To(ContainSubstring("By category:"))
			Expect(output).To(ContainSubstring("By severity:"))
		})

		It("generates shell completion", func() {
			By("Running errdoc completion bash")
			output, err := Exec("completion", "bash")
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(ContainSubstring("errdoc"))
		})
	})
}
