package model

import (
	"context"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Operation is one API route rendered in the API surface section.
type Operation = map[string]string

var operationMethods = []string{"GET", "PUT", "POST", "DELETE", "PATCH", "HEAD", "OPTIONS", "TRACE"}

// apiSurface extracts the document title and the route list from raw OpenAPI
// text. External references are never followed. Documents that fail to load
// produce no surface.
func apiSurface(document string) (string, []Operation) {
	if strings.TrimSpace(document) == "" {
		return "", nil
	}

	loader := &openapi3.Loader{
		Context:               context.Background(),
		IsExternalRefsAllowed: false,
	}
	spec, err := loader.LoadFromData([]byte(document))
	if err != nil || spec == nil {
		return "", nil
	}

	var title string
	if spec.Info != nil {
		title = cleanText(spec.Info.Title)
		if version := cleanValue(spec.Info.Version); title != "" && version != "" {
			title += " " + version
		}
	}

	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return title, nil
	}

	items := spec.Paths.Map()
	paths := make([]string, 0, len(items))
	for path := range items {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var operations []Operation
	for _, path := range paths {
		item := items[path]
		if item == nil {
			continue
		}
		for _, method := range operationMethods {
			op := item.GetOperation(method)
			if op == nil {
				continue
			}
			operations = append(operations, Operation{
				"method":  method,
				"path":    path,
				"summary": cleanText(op.Summary),
			})
		}
	}
	return title, operations
}
