package model

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func strictPolicy() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// placeholders are values detectors emit for unknown facts. They are treated
// as absent so they never reach the rendered document.
var placeholders = map[string]struct{}{
	"null":      {},
	"undefined": {},
	"n/a":       {},
	"none":      {},
	"nil":       {},
}

// cleanText strips markup from prose, collapses whitespace and drops
// placeholder values.
func cleanText(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	stripped := html.UnescapeString(strictPolicy().Sanitize(value))
	return cleanValue(stripped)
}

// cleanValue collapses whitespace and drops placeholder values. Commands and
// paths go through here untouched by the HTML policy since shell syntax such
// as "<" or "&&" is meaningful.
func cleanValue(value string) string {
	collapsed := strings.Join(strings.Fields(value), " ")
	if _, ok := placeholders[strings.ToLower(collapsed)]; ok {
		return ""
	}
	return collapsed
}

func cleanTexts(values []string) []string {
	var out []string
	for _, value := range values {
		if v := cleanText(value); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func cleanValues(values []string) []string {
	var out []string
	for _, value := range values {
		if v := cleanValue(value); v != "" {
			out = append(out, v)
		}
	}
	return out
}
