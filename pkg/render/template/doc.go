// Package template defines the renderer-agnostic template seam. The markdown
// renderer depends on TemplateRenderer only, so the pongo2 adapter in the
// gotemplate subpackage can be swapped for another engine in tests.
package template
