package agentsgen

import (
	"io/fs"

	"github.com/goliatone/go-agentsgen/pkg/renderers/markdown"
)

// EmbeddedTemplates exposes the built-in AGENTS templates so callers can copy
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return markdown.TemplatesFS()
}
