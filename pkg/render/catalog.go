package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrTemplateNotFound reports a template name missing from the catalog. The
// selector only emits names it was configured with, so this signals a wiring
// mistake rather than bad input.
var ErrTemplateNotFound = errors.New("render: template not found")

// Catalog maps template names to the files the engine loads. Implementations
// can embed or wrap this for dependency injection.
type Catalog struct {
	mu        sync.RWMutex
	templates map[string]string
}

// NewCatalog creates an empty catalog instance.
func NewCatalog() *Catalog {
	return &Catalog{
		templates: make(map[string]string),
	}
}

// Register maps name to a template file. Duplicate names return an error.
func (c *Catalog) Register(name, file string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("render: template name is required")
	}
	file = strings.TrimSpace(file)
	if file == "" {
		return fmt.Errorf("render: template %q needs a file", name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.templates[name]; exists {
		return fmt.Errorf("render: template %q already registered", name)
	}

	c.templates[name] = file
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (c *Catalog) MustRegister(name, file string) {
	if err := c.Register(name, file); err != nil {
		panic(err)
	}
}

// Lookup returns the file registered for name.
func (c *Catalog) Lookup(name string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	file, ok := c.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return file, nil
}

// List returns a sorted list of template names.
func (c *Catalog) List() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a template is registered.
func (c *Catalog) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.templates[name]
	return ok
}
