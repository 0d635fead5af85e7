// Package tokens approximates LLM token counts for budget checks.
package tokens

import "unicode/utf8"

// charsPerToken is the rough ratio for English prose and markdown.
const charsPerToken = 4

// Estimate returns ceil(runes/4). It is not a tokenizer: the value is only a
// stable, monotonic signal for the size budgets.
func Estimate(text string) int {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	return (n + charsPerToken - 1) / charsPerToken
}
