package validation

import (
	"regexp"
	"strings"
)

var (
	sectionHeadingPattern = regexp.MustCompile(`^##[ \t]+\S`)
	htmlCommentPattern    = regexp.MustCompile(`^<!--.*-->$`)
)

// Section is one level-2 heading and the lines up to the next level-2 heading
// or the end of the document. Deeper headings stay inside Body.
type Section struct {
	Heading string
	// Line is the 1-based line number of the heading.
	Line int
	Body []string
}

// Empty reports whether every body line is blank or a lone HTML comment.
func (s Section) Empty() bool {
	for _, line := range s.Body {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || htmlCommentPattern.MatchString(trimmed) {
			continue
		}
		return false
	}
	return true
}

// Sections scans content line by line. Text before the first level-2 heading
// (the title and preamble) belongs to no section.
func Sections(content string) []Section {
	var sections []Section
	for i, line := range strings.Split(normalize(content), "\n") {
		if sectionHeadingPattern.MatchString(line) {
			sections = append(sections, Section{Heading: strings.TrimSpace(line), Line: i + 1})
			continue
		}
		if n := len(sections); n > 0 {
			sections[n-1].Body = append(sections[n-1].Body, line)
		}
	}
	return sections
}

func normalize(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}

// countLines counts lines after dropping trailing blank lines, so a final
// newline does not add a line.
func countLines(content string) int {
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return len(lines)
}
