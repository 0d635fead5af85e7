// Package markdown ships the built-in AGENTS.md templates and wires them to
// the pongo2 engine. Top-level templates are thin include lists; shared
// sections live in underscore-prefixed partials.
package markdown

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-agentsgen/pkg/render"
	rendertemplate "github.com/goliatone/go-agentsgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-agentsgen/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	catalog          *render.Catalog
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide every file named by the catalog.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithCatalog replaces the default template catalog.
func WithCatalog(catalog *render.Catalog) Option {
	return func(cfg *config) {
		if catalog != nil {
			cfg.catalog = catalog
		}
	}
}

// DefaultCatalog registers the five built-in templates.
func DefaultCatalog() *render.Catalog {
	catalog := render.NewCatalog()
	for _, name := range []string{
		render.TemplateMonorepo,
		render.TemplateFrontend,
		render.TemplateBackend,
		render.TemplateLibrary,
		render.TemplateGeneric,
	} {
		catalog.MustRegister(name, name+".tmpl")
	}
	return catalog
}

// New constructs the markdown renderer applying any provided options.
func New(options ...Option) (*render.Renderer, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.catalog == nil {
		cfg.catalog = DefaultCatalog()
	}

	engine := cfg.templateRenderer
	if engine == nil {
		pongo, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("markdown renderer: configure template renderer: %w", err)
		}
		engine = pongo
	}

	renderer, err := render.NewRenderer(engine, cfg.catalog)
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}
	return renderer, nil
}
