package render_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/goliatone/go-agentsgen/pkg/model"
	"github.com/goliatone/go-agentsgen/pkg/render"
)

type stubEngine struct {
	output string
	err    error
	called string
	data   any
}

func (s *stubEngine) Render(name string, data any, out ...io.Writer) (string, error) {
	return s.RenderTemplate(name, data, out...)
}

func (s *stubEngine) RenderTemplate(name string, data any, _ ...io.Writer) (string, error) {
	s.called = name
	s.data = data
	return s.output, s.err
}

func (s *stubEngine) RenderString(string, any, ...io.Writer) (string, error) {
	return s.output, s.err
}

func (s *stubEngine) RegisterFilter(string, func(any, any) (any, error)) error { return nil }

func (s *stubEngine) GlobalContext(any) error { return nil }

func newRenderer(t *testing.T, engine *stubEngine) *render.Renderer {
	t.Helper()
	catalog := render.NewCatalog()
	catalog.MustRegister(render.TemplateGeneric, "agents-generic.tmpl")
	renderer, err := render.NewRenderer(engine, catalog)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func TestRenderer_RenderTidiesOutput(t *testing.T) {
	engine := &stubEngine{output: "\n# AGENTS  \r\n\n\n\nbody\n\n"}
	renderer := newRenderer(t, engine)

	out, err := renderer.Render(render.TemplateGeneric, model.Context{model.KeyProjectName: "demo"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "# AGENTS\n\nbody\n"; out != want {
		t.Fatalf("render = %q, want %q", out, want)
	}
	if engine.called != "agents-generic.tmpl" {
		t.Fatalf("engine called with %q", engine.called)
	}
	data, ok := engine.data.(map[string]any)
	if !ok || data[model.KeyProjectName] != "demo" {
		t.Fatalf("engine data = %#v", engine.data)
	}
}

func TestRenderer_TemplateNotFound(t *testing.T) {
	engine := &stubEngine{output: "# AGENTS\n"}
	renderer := newRenderer(t, engine)

	_, err := renderer.Render("agents-missing", model.Context{})
	if !errors.Is(err, render.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
	if engine.called != "" {
		t.Fatalf("engine should not run for unknown templates")
	}
}

func TestRenderer_EngineError(t *testing.T) {
	boom := errors.New("boom")
	renderer := newRenderer(t, &stubEngine{err: boom})

	_, err := renderer.Render(render.TemplateGeneric, model.Context{})
	if !errors.Is(err, boom) || !strings.Contains(err.Error(), render.TemplateGeneric) {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestNewRenderer_RequiresDependencies(t *testing.T) {
	if _, err := render.NewRenderer(nil, render.NewCatalog()); err == nil {
		t.Fatalf("expected error without engine")
	}
	if _, err := render.NewRenderer(&stubEngine{}, nil); err == nil {
		t.Fatalf("expected error without catalog")
	}
}
