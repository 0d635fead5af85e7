package agentsgen_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-agentsgen"
	"github.com/goliatone/go-agentsgen/pkg/testsupport"
)

func TestRenderAgentsMd(t *testing.T) {
	detection := testsupport.Detection(t, testsupport.FixtureGoService)

	result, err := agentsgen.RenderAgentsMd(detection, agentsgen.ProfileStandard)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(result.Content, "# AGENTS\n") {
		t.Fatalf("unexpected first line in %q", result.Content[:min(len(result.Content), 40)])
	}
	if !result.Validation.Valid {
		t.Fatalf("expected valid output: %v", result.Validation.Errors)
	}

	again := agentsgen.Validate(result.Content, agentsgen.ProfileStandard)
	if diff := testsupport.CompareGolden(result.Validation, again); diff != "" {
		t.Fatalf("validation differs when rerun (-want +got):\n%s", diff)
	}
}

func TestLoadDetectionFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detection.json")
	payload := `{"project":{"name":"tiny"},"languages":["Go"]}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	detection, err := agentsgen.LoadDetectionFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	fromBytes, err := agentsgen.LoadDetection([]byte(payload))
	if err != nil {
		t.Fatalf("load bytes: %v", err)
	}
	if diff := testsupport.CompareGolden(fromBytes, detection); diff != "" {
		t.Fatalf("file and byte loaders disagree (-bytes +file):\n%s", diff)
	}

	result, err := agentsgen.RenderAgentsMd(detection, "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(result.Content, "tiny") {
		t.Fatalf("project name missing from output")
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	for _, name := range []string{"agents-generic.tmpl", "agents-monorepo.tmpl", "_header.tmpl"} {
		if _, err := agentsgen.EmbeddedTemplates().Open(name); err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
	}
}
