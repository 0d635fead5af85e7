package testsupport

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-agentsgen/pkg/detect"
)

//go:embed fixtures/*.yaml
var fixtureFS embed.FS

// Fixture names shipped with the package.
const (
	FixtureReactVite = "react-vite"
	FixtureGoService = "go-service"
)

// Detection decodes an embedded detection fixture by name ("react-vite").
// Testing helpers fail the test on error to keep contract tests concise.
func Detection(t *testing.T, name string) detect.Result {
	t.Helper()

	result, err := LoadDetection(name)
	if err != nil {
		t.Fatalf("load detection: %v", err)
	}
	return result
}

// LoadDetection returns an embedded fixture without requiring testing.T, so
// callers can wire fixtures in setup functions and benchmarks.
func LoadDetection(name string) (detect.Result, error) {
	if name == "" {
		return detect.Result{}, errors.New("testsupport: fixture name is required")
	}
	result, err := detect.LoadFS(fixtureFS, path.Join("fixtures", name+".yaml"))
	if err != nil {
		return detect.Result{}, fmt.Errorf("testsupport: fixture %q: %w", name, err)
	}
	return result, nil
}

// WriteGolden writes value as indented JSON when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	writeFile(t, path, append(payload, '\n'))
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
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

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	writeFile(t, path, data)
	return true
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
