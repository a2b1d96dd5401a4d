// Package testsupport holds golden-file helpers shared by replay tests.
package testsupport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formguard/pkg/script"
)

// UpdateGoldens reports whether golden files should be rewritten.
func UpdateGoldens() bool {
	return os.Getenv("UPDATE_GOLDENS") != ""
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustLoadTranscript decodes a YAML golden transcript.
func MustLoadTranscript(t *testing.T, path string) script.Transcript {
	t.Helper()

	var out script.Transcript
	if err := yaml.Unmarshal(MustReadGolden(t, path), &out); err != nil {
		t.Fatalf("decode golden %s: %v", path, err)
	}
	return out
}

// WriteTranscript writes a golden transcript when UPDATE_GOLDENS is set.
// Returns true if the golden was written (test should exit early).
func WriteTranscript(t *testing.T, path string, transcript script.Transcript) bool {
	t.Helper()

	if !UpdateGoldens() {
		return false
	}
	var buf bytes.Buffer
	if err := transcript.WriteYAML(&buf); err != nil {
		t.Fatalf("encode golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}
