package render_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-agentsgen/pkg/render"
)

func TestCatalog_RegisterLookup(t *testing.T) {
	catalog := render.NewCatalog()
	catalog.MustRegister("agents-library", "agents-library.tmpl")
	catalog.MustRegister("agents-generic", "agents-generic.tmpl")

	file, err := catalog.Lookup("agents-library")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if file != "agents-library.tmpl" {
		t.Fatalf("file = %q", file)
	}
	if !catalog.Has("agents-generic") || catalog.Has("agents-frontend") {
		t.Fatalf("unexpected Has results")
	}
	if diff := cmp.Diff([]string{"agents-generic", "agents-library"}, catalog.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_Errors(t *testing.T) {
	catalog := render.NewCatalog()
	if err := catalog.Register(" ", "x.tmpl"); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := catalog.Register("x", ""); err == nil {
		t.Fatalf("expected error for empty file")
	}
	catalog.MustRegister("x", "x.tmpl")
	if err := catalog.Register("x", "y.tmpl"); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if _, err := catalog.Lookup("missing"); !errors.Is(err, render.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}
