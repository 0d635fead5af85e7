package render

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-agentsgen/pkg/model"
	"github.com/goliatone/go-agentsgen/pkg/render/template"
)

// Renderer turns a template name and context into markdown.
type Renderer struct {
	engine  template.TemplateRenderer
	catalog *Catalog
}

// NewRenderer wires an engine to the catalog of names it may render.
func NewRenderer(engine template.TemplateRenderer, catalog *Catalog) (*Renderer, error) {
	if engine == nil {
		return nil, errors.New("render: template engine is required")
	}
	if catalog == nil {
		return nil, errors.New("render: template catalog is required")
	}
	return &Renderer{engine: engine, catalog: catalog}, nil
}

// Catalog exposes the registered template names.
func (r *Renderer) Catalog() *Catalog {
	return r.catalog
}

// Render executes the template registered as name. Names missing from the
// catalog return an error wrapping ErrTemplateNotFound. The output is passed
// through Tidy.
func (r *Renderer) Render(name string, ctx model.Context) (string, error) {
	file, err := r.catalog.Lookup(name)
	if err != nil {
		return "", err
	}
	out, err := r.engine.RenderTemplate(file, map[string]any(ctx))
	if err != nil {
		return "", fmt.Errorf("render: template %q: %w", name, err)
	}
	return Tidy(out), nil
}
