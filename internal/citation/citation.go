// Package citation checks student citations against a classroom's required
// format and produces guidance hints. The checks are deliberately heuristic:
// they nudge the student toward the format without revealing the answer.
package citation

import (
	"fmt"
	"strings"
	"time"

	"github.com/thebeat-edu/beat-go-api/internal/models"
)

const maxHints = 3

// ArticleMetadata is the source information a citation is checked against.
type ArticleMetadata struct {
	Title       string
	Author      string
	PublishedAt time.Time
	Section     string
}

// Validation is the outcome of checking one citation.
type Validation struct {
	IsValid bool     `json:"isValid"`
	Hints   []string `json:"hints"`
}

// FormatExamples maps each style to a display example for students.
var FormatExamples = map[models.CitationStyle]string{
	models.CitationMLA:     `Author Last, First. "Article Title." *The Atlantic*, Day Month Year.`,
	models.CitationAPA:     `Author Last, F. (Year, Month Day). Article title. *The Atlantic*. URL`,
	models.CitationChicago: `Author Last, First. "Article Title." *The Atlantic*, Month Day, Year.`,
}

// FormatDescriptions maps each style to the elements students must include.
var FormatDescriptions = map[models.CitationStyle][]string{
	models.CitationMLA: {
		"Author's last name, followed by first name",
		"Article title in quotation marks",
		"Publication name in italics (The Atlantic)",
		"Publication date: Day Month Year",
	},
	models.CitationAPA: {
		"Author's last name, followed by first initial",
		"Year, Month Day in parentheses",
		"Article title (only first word capitalized)",
		"Publication name in italics",
		"URL (if available)",
	},
	models.CitationChicago: {
		"Author's last name, followed by first name",
		"Article title in quotation marks",
		"Publication name in italics",
		"Publication date: Month Day, Year",
	},
}

// Validate checks a student citation against the article metadata and
// format, returning at most three hints. A citation is valid only when no
// hint applies.
func Validate(meta ArticleMetadata, studentCitation string, style models.CitationStyle) Validation {
	trimmed := strings.TrimSpace(studentCitation)
	if trimmed == "" {
		return Validation{Hints: []string{"Please enter a citation for this source."}}
	}

	var hints []string
	lower := strings.ToLower(trimmed)
	lastName := extractLastName(meta.Author)
	firstName := extractFirstName(meta.Author)
	year := fmt.Sprintf("%d", meta.PublishedAt.Year())
	month := strings.ToLower(meta.PublishedAt.Month().String())

	if lastName != "" && !strings.Contains(lower, lastName) {
		hints = append(hints, "Make sure to include the author's last name.")
	}

	hasFirstName := firstName != "" && strings.Contains(lower, firstName)
	if style == models.CitationAPA {
		hasInitial := firstName != "" && strings.Contains(lower, firstName[:1]+".")
		if !hasInitial && !hasFirstName {
			hints = append(hints, "In APA format, include the author's first initial followed by a period.")
		}
	} else if !hasFirstName {
		hints = append(hints, "Include the author's first name in your citation.")
	}

	if !containsTitleWord(lower, meta.Title) {
		hints = append(hints, "Include the article title in your citation.")
	}

	if style == models.CitationMLA || style == models.CitationChicago {
		if !strings.Contains(trimmed, `"`) {
			hints = append(hints, "Article titles should be enclosed in quotation marks.")
		}
	}

	if !strings.Contains(lower, year) {
		hints = append(hints, "Include the publication year.")
	}

	if !strings.Contains(lower, "atlantic") {
		hints = append(hints, "Include the publication name (The Atlantic).")
	}

	if !hasItalicsIndicator(trimmed) {
		hints = append(hints, "The publication name should be italicized. Use *asterisks* or _underscores_ to indicate italics.")
	}

	switch style {
	case models.CitationMLA, models.CitationChicago:
		if !strings.Contains(lower, month) {
			hints = append(hints, fmt.Sprintf("In %s format, spell out the full month name.", strings.ToUpper(string(style))))
		}
		if !strings.HasSuffix(trimmed, ".") {
			hints = append(hints, fmt.Sprintf("%s citations should end with a period.", strings.ToUpper(string(style))))
		}
	case models.CitationAPA:
		if !strings.Contains(trimmed, "(") || !strings.Contains(trimmed, ")") {
			hints = append(hints, "In APA format, the date should be in parentheses.")
		}
		if !strings.HasSuffix(trimmed, ".") {
			hints = append(hints, "APA citations should end with a period.")
		}
	}

	if !strings.Contains(trimmed, ",") {
		hints = append(hints, "Citations typically use commas to separate different elements.")
	}

	if len(hints) == 0 {
		return Validation{IsValid: true, Hints: []string{}}
	}
	if len(hints) > maxHints {
		hints = hints[:maxHints]
	}
	return Validation{Hints: hints}
}

// Reference produces the correctly formatted citation for teacher-side
// reference. It is never shown to students.
func Reference(meta ArticleMetadata, style models.CitationStyle) string {
	day := meta.PublishedAt.Day()
	month := meta.PublishedAt.Month().String()
	year := meta.PublishedAt.Year()

	parts := strings.Fields(meta.Author)
	lastName := meta.Author
	firstName := ""
	if len(parts) > 1 {
		lastName = parts[len(parts)-1]
		firstName = strings.Join(parts[:len(parts)-1], " ")
	}

	switch style {
	case models.CitationMLA:
		return fmt.Sprintf("%s, %s. \"%s.\" *The Atlantic*, %d %s. %d.",
			lastName, firstName, meta.Title, day, month[:3], year)
	case models.CitationAPA:
		initial := ""
		if firstName != "" {
			initial = firstName[:1]
		}
		title := meta.Title
		if title != "" {
			title = strings.ToUpper(title[:1]) + strings.ToLower(title[1:])
		}
		return fmt.Sprintf("%s, %s. (%d, %s %d). %s. *The Atlantic*.",
			lastName, initial, year, month, day, title)
	case models.CitationChicago:
		return fmt.Sprintf("%s, %s. \"%s.\" *The Atlantic*, %s %d, %d.",
			lastName, firstName, meta.Title, month, day, year)
	}
	return ""
}

func extractLastName(author string) string {
	parts := strings.Fields(author)
	if len(parts) == 0 {
		return ""
	}
	return strings.ToLower(parts[len(parts)-1])
}

func extractFirstName(author string) string {
	parts := strings.Fields(author)
	if len(parts) == 0 {
		return ""
	}
	return strings.ToLower(parts[0])
}

func containsTitleWord(citation, title string) bool {
	for _, word := range strings.Fields(strings.ToLower(title)) {
		if len(word) > 3 && strings.Contains(citation, word) {
			return true
		}
	}
	return false
}

func hasItalicsIndicator(citation string) bool {
	return strings.Contains(citation, "*") ||
		strings.Contains(citation, "_") ||
		strings.Contains(citation, "<i>") ||
		strings.Contains(citation, "<em>")
}
