//go:build e2e

package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	. "github.com/onsi/ginkgo/v2"
)

// binary resolves the errdoc binary under test. Point ERRDOC_E2E_BIN at a
// fresh build; an empty value falls back to whatever is on PATH.
func binary() string {
	if bin := os.Getenv("ERRDOC_E2E_BIN"); bin != "" {
		return bin
	}
	return "errdoc"
}

// Exec runs errdoc with the given arguments and returns combined
// stdout/stderr output.
func Exec(args ...string) (string, error) {
	cmd := exec.Command(binary(), args...)
	output, err := cmd.CombinedOutput()
	fmt.Fprintf(GinkgoWriter, "$ errdoc %s\n%s", strings.Join(args, " "), output)
	if err != nil {
		fmt.Fprintf(GinkgoWriter, "Error: %v\n", err)
	}
	return string(output), err
}

// ExecStdin runs errdoc with the given stdin content.
func ExecStdin(stdin string, args ...string) (string, error) {
	cmd := exec.Command(binary(), args...)
	cmd.Stdin = strings.NewReader(stdin)
	output, err := cmd.CombinedOutput()
	fmt.Fprintf(GinkgoWriter, "$ errdoc %s <<<input\n%s", strings.Join(args, " "), output)
	if err != nil {
		fmt.Fprintf(GinkgoWriter, "Error: %v\n", err)
	}
	return string(output), err
}
