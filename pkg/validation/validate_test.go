package validation_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-agentsgen/pkg/profile"
	"github.com/goliatone/go-agentsgen/pkg/validation"
)

func contains(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}

func hasEmptySectionWarning(result validation.Result) bool {
	for _, w := range result.Warnings {
		if strings.Contains(w, "appears to be empty") {
			return true
		}
	}
	return false
}

// document builds an n line document with a single section.
func document(n int) string {
	var b strings.Builder
	b.WriteString("# AGENTS\n\n## Notes\n\n")
	for i := 4; i < n; i++ {
		fmt.Fprintf(&b, "- line %d\n", i)
	}
	return b.String()
}

func TestValidate_WarningsOnlyStayValid(t *testing.T) {
	result := validation.Validate("# AGENTS", profile.Compact)

	if !result.Valid {
		t.Fatalf("expected valid result, got %+v", result)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", result.Errors)
	}
	want := "Output is quite short (1 lines). Target for compact: 50-110 lines."
	if !contains(result.Warnings, want) {
		t.Fatalf("missing short warning, got %v", result.Warnings)
	}
}

func TestValidate_ForbiddenPlaceholders(t *testing.T) {
	cases := []struct {
		content string
		want    []string
	}{
		{"# AGENTS\n\nvalue: undefined", []string{`Output contains forbidden placeholder string: "undefined"`}},
		{"# AGENTS\n\nvalue: null", []string{`Output contains forbidden placeholder string: "null"`}},
		{"value: undefined and undefined, null", []string{
			`Output contains forbidden placeholder string: "undefined"`,
			`Output contains forbidden placeholder string: "null"`,
		}},
		{"# AGENTS\n\nWords: nullify and undefinedBehavior.", []string{}},
		{"# AGENTS\n\nEverything is rendered correctly.", []string{}},
	}
	for _, tc := range cases {
		result := validation.Validate(tc.content, profile.Standard)
		if diff := cmp.Diff(tc.want, result.Errors); diff != "" {
			t.Fatalf("errors for %q mismatch (-want +got):\n%s", tc.content, diff)
		}
		if result.Valid != (len(tc.want) == 0) {
			t.Fatalf("valid = %v for %q", result.Valid, tc.content)
		}
	}
}

func TestValidate_NAPlaceholders(t *testing.T) {
	result := validation.Validate("# AGENTS\n\n## Commands\n\n- Build: `N/A`\n- Test: `N/A`\n- Lint: N/A\n", profile.Compact)
	if !contains(result.Warnings, "Found 2 N/A placeholder(s). Consider hiding missing commands.") {
		t.Fatalf("missing N/A warning, got %v", result.Warnings)
	}
	if !result.Valid {
		t.Fatalf("N/A placeholders must not invalidate output")
	}
}

func TestValidate_EmptySections(t *testing.T) {
	adjacent := strings.Join([]string{
		"# AGENTS",
		"## First section",
		"## Second section",
		"text",
	}, "\n")
	result := validation.Validate(adjacent, profile.Compact)
	if !contains(result.Warnings, `Section "## First section" appears to be empty`) {
		t.Fatalf("expected empty section warning, got %v", result.Warnings)
	}
	if contains(result.Warnings, `Section "## Second section" appears to be empty`) {
		t.Fatalf("second section has content")
	}

	nested := strings.Join([]string{
		"# AGENTS",
		"## Main section",
		"### Subsection",
		"details here",
		"## Next section",
		"text",
	}, "\n")
	if result := validation.Validate(nested, profile.Compact); hasEmptySectionWarning(result) {
		t.Fatalf("level-3 content must keep the section non-empty: %v", result.Warnings)
	}

	commented := "# AGENTS\n\n## Pending\n\n<!-- filled in later -->\n   \n## Done\n\nok\n"
	if result := validation.Validate(commented, profile.Compact); !contains(result.Warnings, `Section "## Pending" appears to be empty`) {
		t.Fatalf("comment-only section should warn, got %v", result.Warnings)
	}

	trailing := "# AGENTS\n\n## Last\n\n\n"
	if result := validation.Validate(trailing, profile.Compact); !contains(result.Warnings, `Section "## Last" appears to be empty`) {
		t.Fatalf("trailing empty section should warn, got %v", result.Warnings)
	}
}

func TestValidate_LineCountIgnoresTrailingBlankLines(t *testing.T) {
	base := document(60)
	a := validation.Validate(base, profile.Compact)
	b := validation.Validate(base+"\n\n\n", profile.Compact)
	c := validation.Validate(strings.ReplaceAll(base, "\n", "\r\n"), profile.Compact)

	if a.LineCount != 60 {
		t.Fatalf("line count = %d, want 60", a.LineCount)
	}
	if a.LineCount != b.LineCount || a.LineCount != c.LineCount {
		t.Fatalf("line counts differ: %d %d %d", a.LineCount, b.LineCount, c.LineCount)
	}
	if a.EstimatedTokens != c.EstimatedTokens {
		t.Fatalf("CRLF should not change the token estimate: %d vs %d", a.EstimatedTokens, c.EstimatedTokens)
	}
	if len(a.Warnings) != 0 {
		t.Fatalf("in-band document should not warn, got %v", a.Warnings)
	}
}

func TestValidate_TooLong(t *testing.T) {
	result := validation.Validate(document(120), profile.Compact)
	want := "Output is too long (120 lines). Target for compact: 50-110 lines."
	if !contains(result.Warnings, want) {
		t.Fatalf("missing long warning, got %v", result.Warnings)
	}
	if !result.Valid {
		t.Fatalf("line budget violations are warnings only")
	}
}

func TestValidate_TokenBudget(t *testing.T) {
	var b strings.Builder
	b.WriteString("# AGENTS\n\n## Notes\n\n")
	for i := 0; i < 60; i++ {
		b.WriteString(strings.Repeat("word ", 20) + "\n")
	}
	result := validation.Validate(b.String(), profile.Compact)
	want := fmt.Sprintf("%d tokens exceeds budget for compact (max: 900). AI agents may not process it efficiently.", result.EstimatedTokens)
	if result.EstimatedTokens <= 900 || !contains(result.Warnings, want) {
		t.Fatalf("expected token warning, tokens=%d warnings=%v", result.EstimatedTokens, result.Warnings)
	}
	if !result.Valid {
		t.Fatalf("token budget violations are warnings only")
	}
}

func TestValidate_Idempotent(t *testing.T) {
	content := "# AGENTS\n\n## Empty\n\n## Commands\n\n- Test: `N/A`\n\nvalue: null\n"
	for _, p := range profile.All() {
		first := validation.Validate(content, p)
		second := validation.Validate(content, p)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("%s: results differ (-first +second):\n%s", p, diff)
		}
	}
}

func TestValidate_UnknownProfileUsesDefault(t *testing.T) {
	got := validation.Validate("# AGENTS", profile.Profile("verbose"))
	want := validation.Validate("# AGENTS", profile.DefaultProfile)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unknown profile mismatch (-want +got):\n%s", diff)
	}
}

func TestSections(t *testing.T) {
	content := "# AGENTS\nintro\n## One\r\n### Sub\nbody\n##NotHeading\n## Two\n"
	want := []validation.Section{
		{Heading: "## One", Line: 3, Body: []string{"### Sub", "body", "##NotHeading"}},
		{Heading: "## Two", Line: 7, Body: []string{""}},
	}
	if diff := cmp.Diff(want, validation.Sections(content)); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
	if validation.Sections("# AGENTS\nno sections\n") != nil {
		t.Fatalf("expected no sections")
	}
}
