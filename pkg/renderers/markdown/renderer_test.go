package markdown_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-agentsgen/pkg/model"
	"github.com/goliatone/go-agentsgen/pkg/profile"
	"github.com/goliatone/go-agentsgen/pkg/render"
	"github.com/goliatone/go-agentsgen/pkg/renderers/markdown"
	"github.com/goliatone/go-agentsgen/pkg/testsupport"
)

func TestDefaultCatalog(t *testing.T) {
	want := []string{
		render.TemplateBackend,
		render.TemplateFrontend,
		render.TemplateGeneric,
		render.TemplateLibrary,
		render.TemplateMonorepo,
	}
	if diff := cmp.Diff(want, markdown.DefaultCatalog().List()); diff != "" {
		t.Fatalf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_EveryTemplateStartsWithHeading(t *testing.T) {
	renderer, err := markdown.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ctx, err := model.NewBuilder().Build(testsupport.Detection(t, testsupport.FixtureGoService), profile.Full)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	for _, name := range renderer.Catalog().List() {
		out, err := renderer.Render(name, ctx)
		if err != nil {
			t.Fatalf("render %s: %v", name, err)
		}
		if !strings.HasPrefix(out, "# AGENTS\n") {
			t.Fatalf("%s: unexpected start %q", name, out[:min(len(out), 30)])
		}
		if strings.Contains(out, "&gt;") || strings.Contains(out, "&amp;") {
			t.Fatalf("%s: output is HTML escaped", name)
		}
		if strings.Contains(out, "{%") || strings.Contains(out, "{{") {
			t.Fatalf("%s: template syntax leaked into output", name)
		}
	}
}

func TestRenderer_MinimalContext(t *testing.T) {
	renderer, err := markdown.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ctx, err := model.NewBuilder().Build(testsupport.Detection(t, testsupport.FixtureReactVite), profile.Compact)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, key := range []string{"has_stack", "has_commands", "has_directories", "has_testing"} {
		ctx[key] = false
	}

	out, err := renderer.Render(render.TemplateGeneric, ctx)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "## Commands") {
		t.Fatalf("gated section rendered:\n%s", out)
	}
}

func TestRenderer_CustomBundle(t *testing.T) {
	files := fstest.MapFS{
		"custom.tmpl": {Data: []byte("# AGENTS\n{% if show_full %}\nfull {{ project_name }}\n{% endif %}\n\n\n")},
	}
	catalog := render.NewCatalog()
	catalog.MustRegister("custom", "custom.tmpl")

	renderer, err := markdown.New(markdown.WithTemplatesFS(files), markdown.WithCatalog(catalog))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render("custom", model.Context{"show_full": true, "project_name": "a&b"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "# AGENTS\nfull a&b\n"; out != want {
		t.Fatalf("custom render mismatch\nwant: %q\n got: %q", want, out)
	}

	if _, err := renderer.Render(render.TemplateGeneric, model.Context{}); !errors.Is(err, render.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}
