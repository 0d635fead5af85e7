package gotemplate

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"regexp"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// blockLinePattern matches a line holding only block tags. Such lines are
// collapsed to the bare tags so they leave no blank line in the output, the
// way Jinja's trim_blocks and lstrip_blocks behave.
var blockLinePattern = regexp.MustCompile(`(?m)^[ \t]*(\{%[^\n]*?%\})[ \t]*\n`)

// sourceLoader serves templates from an fs.FS and rewrites their source
// before pongo2 parses it. Included templates go through the same loader, so
// every file gets identical treatment.
type sourceLoader struct {
	files      fs.FS
	trimBlocks bool
	autoescape bool
}

var _ pongo2.TemplateLoader = (*sourceLoader)(nil)

// Abs resolves name relative to the directory of the including template.
func (l *sourceLoader) Abs(base, name string) string {
	name = strings.TrimPrefix(name, "/")
	if base == "" || strings.Contains(name, "/") {
		return path.Clean(name)
	}
	return path.Join(path.Dir(base), name)
}

// Get reads and preprocesses a template.
func (l *sourceLoader) Get(name string) (io.Reader, error) {
	data, err := fs.ReadFile(l.files, name)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: read %s: %w", name, err)
	}
	return bytes.NewReader(l.prepare(data)), nil
}

func (l *sourceLoader) prepare(src []byte) []byte {
	if l.trimBlocks {
		src = blockLinePattern.ReplaceAll(src, []byte("$1"))
	}
	if l.autoescape {
		return src
	}
	out := make([]byte, 0, len(src)+40)
	out = append(out, "{% autoescape off %}"...)
	out = append(out, src...)
	out = append(out, "{% endautoescape %}"...)
	return out
}
