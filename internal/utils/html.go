package utils

import (
	"regexp"
	"strings"
)

var (
	blockCloseRe = regexp.MustCompile(`(?i)</(p|div|h[1-6]|li|tr|blockquote)>`)
	brRe         = regexp.MustCompile(`(?i)<br\s*/?>`)
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	newlineRunRe = regexp.MustCompile(`\n{3,}`)
	wordRe       = regexp.MustCompile(`\S+`)
)

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// StripHTML converts rich-text HTML to plain text, turning block elements
// into newlines so paragraph structure survives export.
func StripHTML(html string) string {
	text := blockCloseRe.ReplaceAllString(html, "\n")
	text = brRe.ReplaceAllString(text, "\n")
	text = tagRe.ReplaceAllString(text, "")
	text = entityReplacer.Replace(text)
	text = newlineRunRe.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// CountWords reports the number of words in the essay HTML after markup is
// stripped.
func CountWords(html string) int {
	return len(wordRe.FindAllString(StripHTML(html), -1))
}
