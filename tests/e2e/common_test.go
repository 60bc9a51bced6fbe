package e2e

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildPeatBinary builds the peat binary in the specified directory and
// returns its path. It handles the build command execution and error
// checking.
func buildPeatBinary(t *testing.T, dir string) string {
	t.Helper()
	peatBin := filepath.Join(dir, "peat.exe")
	// Assumes tests are running from tests/e2e or similar depth.
	buildCmd := exec.Command("go", "build", "-o", peatBin, "../../cmd/peat")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build peat: %v\n%s", err, string(out))
	}
	return peatBin
}

// runCmd executes the binary and returns its standard output, failing the
// test on a non-zero exit. Stderr is kept out of the return value so log
// lines do not pollute output the tests parse, but is included in failures.
func runCmd(t *testing.T, dir string, input *strings.Reader, name string, args ...string) string {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	if input != nil {
		cmd.Stdin = input
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	fmt.Printf("[%s] Executing: %s %v\n", dir, name, args)
	if err := cmd.Run(); err != nil {
		t.Fatalf("Command %s %v failed in %s: %v\n%s%s", name, args, dir, err, stdout.String(), stderr.String())
	}
	return stdout.String()
}
