package orchestrator

import (
	"fmt"

	"github.com/goliatone/go-agentsgen/pkg/detect"
	"github.com/goliatone/go-agentsgen/pkg/model"
	"github.com/goliatone/go-agentsgen/pkg/profile"
	"github.com/goliatone/go-agentsgen/pkg/render"
	"github.com/goliatone/go-agentsgen/pkg/renderers/markdown"
	"github.com/goliatone/go-agentsgen/pkg/validation"
)

// Selector resolves the template name for a context.
type Selector interface {
	Select(ctx model.Context) string
}

// Renderer produces tidied markdown for a template name.
type Renderer interface {
	Render(name string, ctx model.Context) (string, error)
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithBuilder injects a custom context builder.
func WithBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithSelector injects a custom template selector.
func WithSelector(selector Selector) Option {
	return func(o *Orchestrator) {
		o.selector = selector
	}
}

// WithRenderer injects a custom renderer. When omitted the embedded markdown
// templates are used.
func WithRenderer(renderer Renderer) Option {
	return func(o *Orchestrator) {
		o.renderer = renderer
	}
}

// WithDecorators registers decorators that run against the built context
// before template selection, in the order supplied.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// Orchestrator coordinates the pipeline from detection result to validated
// AGENTS.md content.
type Orchestrator struct {
	builder       model.Builder
	selector      Selector
	renderer      Renderer
	decorators    []model.Decorator
	initialiseErr error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one generation run.
type Request struct {
	// Detection is the project summary produced by an upstream scanner.
	Detection detect.Result

	// Profile selects the verbosity. Empty means profile.DefaultProfile.
	Profile profile.Profile
}

// GenerationResult bundles the rendered document with its validation report
// and the detection it was produced from.
type GenerationResult struct {
	Content    string
	Validation validation.Result
	Detection  detect.Result
}

// Generate builds the context, selects and renders a template, then
// validates the output. Builder and renderer errors are returned as is so
// callers can match them with errors.Is.
func (o *Orchestrator) Generate(req Request) (GenerationResult, error) {
	if err := o.initialiseErr; err != nil {
		return GenerationResult{}, err
	}

	p := req.Profile
	if p == "" {
		p = profile.DefaultProfile
	}

	ctx, err := o.builder.Build(req.Detection, p)
	if err != nil {
		return GenerationResult{}, err
	}
	if err := o.applyDecorators(ctx); err != nil {
		return GenerationResult{}, err
	}

	name := o.selector.Select(ctx)
	content, err := o.renderer.Render(name, ctx)
	if err != nil {
		return GenerationResult{}, err
	}

	return GenerationResult{
		Content:    content,
		Validation: validation.Validate(content, p),
		Detection:  req.Detection,
	}, nil
}

func (o *Orchestrator) applyDecorators(ctx model.Context) error {
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(ctx); err != nil {
			return fmt.Errorf("orchestrator: decorate context: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.builder == nil {
		o.builder = model.NewBuilder()
	}
	if o.selector == nil {
		o.selector = render.NewSelector()
	}
	if o.renderer == nil {
		renderer, err := markdown.New()
		if err != nil {
			o.initialiseErr = err
			return
		}
		o.renderer = renderer
	}
}
