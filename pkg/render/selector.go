package render

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-agentsgen/pkg/model"
)

// Built-in template names.
const (
	TemplateMonorepo = "agents-monorepo"
	TemplateFrontend = "agents-frontend"
	TemplateBackend  = "agents-backend"
	TemplateLibrary  = "agents-library"
	TemplateGeneric  = "agents-generic"
)

// KeyTemplate lets a decorator pin the template for a context.
const KeyTemplate = "template"

// Matcher decides whether a template fits the supplied context.
type Matcher func(ctx model.Context) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Selector picks a template name from context capability flags. Higher
// priority wins; ties fall back to registration order. When nothing matches
// the fallback name is returned.
type Selector struct {
	mu       sync.RWMutex
	rules    []rule
	fallback string
}

// NewSelector constructs a selector with the built-in rules registered.
func NewSelector() *Selector {
	s := &Selector{fallback: TemplateGeneric}
	s.registerBuiltins()
	return s
}

// NewEmptySelector returns a selector without rules that always resolves
// fallback.
func NewEmptySelector(fallback string) *Selector {
	return &Selector{fallback: strings.TrimSpace(fallback)}
}

// Register adds a matcher with the provided name and priority. Higher priority
// values take precedence.
func (s *Selector) Register(name string, priority int, matcher Matcher) {
	if s == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rules = append(s.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(s.rules),
	})
}

// Select returns the template name for ctx. An explicit KeyTemplate value is
// honoured before matcher evaluation.
func (s *Selector) Select(ctx model.Context) string {
	if explicit := strings.TrimSpace(ctx.String(KeyTemplate)); explicit != "" {
		return explicit
	}
	if s == nil {
		return TemplateGeneric
	}
	s.mu.RLock()
	rules := append([]rule(nil), s.rules...)
	fallback := s.fallback
	s.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(ctx) {
			return entry.name
		}
	}
	return fallback
}

func (s *Selector) registerBuiltins() {
	s.Register(TemplateMonorepo, 40, capability(model.CapabilityMonorepo))
	s.Register(TemplateFrontend, 30, capability(model.CapabilityFrontend))
	s.Register(TemplateBackend, 20, capability(model.CapabilityBackend))
	s.Register(TemplateLibrary, 10, capability(model.CapabilityLibrary))
}

func capability(name string) Matcher {
	return func(ctx model.Context) bool {
		return ctx.Capability(name)
	}
}
