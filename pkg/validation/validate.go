// Package validation checks rendered AGENTS documents against the size
// budget of a profile and a small set of structural rules. Problems are
// reported, never corrected: warnings are advisory, errors make the result
// invalid.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-agentsgen/pkg/profile"
	"github.com/goliatone/go-agentsgen/pkg/tokens"
)

// Result is the outcome of one Validate call. Valid is true exactly when
// Errors is empty.
type Result struct {
	Valid           bool     `json:"valid"`
	Warnings        []string `json:"warnings"`
	Errors          []string `json:"errors"`
	LineCount       int      `json:"lineCount"`
	EstimatedTokens int      `json:"estimatedTokens"`
}

type forbiddenToken struct {
	token   string
	pattern *regexp.Regexp
}

var forbiddenTokens = []forbiddenToken{
	{token: "undefined", pattern: regexp.MustCompile(`\bundefined\b`)},
	{token: "null", pattern: regexp.MustCompile(`\bnull\b`)},
}

const naPlaceholder = "`N/A`"

// Validate measures content against the limits of p. Unknown profiles are
// checked against DefaultProfile limits.
func Validate(content string, p profile.Profile) Result {
	limits, err := profile.LimitsFor(p)
	if err != nil {
		p = profile.DefaultProfile
		limits, _ = profile.LimitsFor(p)
	}

	text := normalize(content)
	result := Result{
		Warnings:        []string{},
		Errors:          []string{},
		LineCount:       countLines(text),
		EstimatedTokens: tokens.Estimate(text),
	}

	switch {
	case result.LineCount < limits.MinLines:
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"Output is quite short (%d lines). Target for %s: %d-%d lines.",
			result.LineCount, p, limits.MinLines, limits.MaxLines))
	case result.LineCount > limits.MaxLines:
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"Output is too long (%d lines). Target for %s: %d-%d lines.",
			result.LineCount, p, limits.MinLines, limits.MaxLines))
	}

	switch {
	case limits.MinTokens > 0 && result.EstimatedTokens < limits.MinTokens:
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"Only %d tokens (target for %s: %d-%d). Consider adding more details.",
			result.EstimatedTokens, p, limits.MinTokens, limits.MaxTokens))
	case result.EstimatedTokens > limits.MaxTokens:
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"%d tokens exceeds budget for %s (max: %d). AI agents may not process it efficiently.",
			result.EstimatedTokens, p, limits.MaxTokens))
	}

	for _, forbidden := range forbiddenTokens {
		if forbidden.pattern.MatchString(text) {
			result.Errors = append(result.Errors, fmt.Sprintf(
				"Output contains forbidden placeholder string: \"%s\"", forbidden.token))
		}
	}

	if n := strings.Count(text, naPlaceholder); n > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"Found %d N/A placeholder(s). Consider hiding missing commands.", n))
	}

	for _, section := range Sections(text) {
		if section.Empty() {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"Section \"%s\" appears to be empty", section.Heading))
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}
