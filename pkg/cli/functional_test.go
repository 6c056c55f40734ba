package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/funvibe/rlang/internal/config"
)

var runIDPrefix = regexp.MustCompile(`(?m)^\[[0-9a-f]{8}\] `)

// TestFunctional runs testdata/*.rl through the command line and compares
// stdout followed by stderr with the matching .want file.
func TestFunctional(t *testing.T) {
	testFiles, err := filepath.Glob(filepath.Join("testdata", "*"+config.SourceFileExt))
	if err != nil {
		t.Fatalf("Failed to list test files: %v", err)
	}
	if len(testFiles) == 0 {
		t.Skip("No test files found")
	}

	for _, testFile := range testFiles {
		testName := strings.TrimSuffix(filepath.Base(testFile), config.SourceFileExt)
		wantFile := strings.TrimSuffix(testFile, config.SourceFileExt) + ".want"

		t.Run(testName, func(t *testing.T) {
			wantBytes, err := os.ReadFile(wantFile)
			if err != nil {
				t.Fatalf("Failed to read .want file: %v", err)
			}

			var stdout, stderr bytes.Buffer
			Main([]string{"-color", "never", filepath.ToSlash(testFile)}, &stdout, &stderr)

			// Run ids differ between runs.
			stderrStr := runIDPrefix.ReplaceAllString(strings.TrimSpace(stderr.String()), "")
			stdoutStr := strings.TrimSpace(stdout.String())

			got := stdoutStr
			if stderrStr != "" {
				got += "\n" + stderrStr
			}

			got = strings.TrimSpace(strings.ReplaceAll(got, "\r\n", "\n"))
			want := strings.TrimSpace(strings.ReplaceAll(string(wantBytes), "\r\n", "\n"))
			if got != want {
				t.Errorf("Output mismatch:\n--- want ---\n%s\n--- got ---\n%s", want, got)
			}
		})
	}
}
