package citation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thebeat-edu/beat-go-api/internal/models"
)

var meta = ArticleMetadata{
	Title:       "The Electricity Industry Quietly Spread Climate Denial for Years",
	Author:      "Robinson Meyer",
	PublishedAt: time.Date(2023, time.April, 12, 0, 0, 0, 0, time.UTC),
	Section:     "Science",
}

func TestValidateEmptyCitation(t *testing.T) {
	result := Validate(meta, "   ", models.CitationMLA)
	require.False(t, result.IsValid)
	require.Equal(t, []string{"Please enter a citation for this source."}, result.Hints)
}

func TestValidateAcceptsCompleteMLA(t *testing.T) {
	cite := `Meyer, Robinson. "The Electricity Industry Quietly Spread Climate Denial for Years." *The Atlantic*, 12 April 2023.`
	result := Validate(meta, cite, models.CitationMLA)
	require.True(t, result.IsValid, "hints: %v", result.Hints)
	require.Empty(t, result.Hints)
}

func TestValidateAcceptsChicagoReference(t *testing.T) {
	// The Chicago reference format spells the month out, so it passes its
	// own validator.
	correct := Reference(meta, models.CitationChicago)
	result := Validate(meta, correct, models.CitationChicago)
	require.True(t, result.IsValid, "hints: %v", result.Hints)
}

func TestValidateHintsAreCappedAtThree(t *testing.T) {
	result := Validate(meta, "something entirely unrelated", models.CitationMLA)
	require.False(t, result.IsValid)
	require.Len(t, result.Hints, 3)
}

func TestValidateMissingAuthor(t *testing.T) {
	cite := `"The Electricity Industry Quietly Spread Climate Denial for Years." *The Atlantic*, 12 April 2023.`
	result := Validate(meta, cite, models.CitationMLA)
	require.False(t, result.IsValid)
	require.Contains(t, result.Hints, "Make sure to include the author's last name.")
}

func TestValidateAPARequiresParentheses(t *testing.T) {
	cite := `Meyer, R. 2023, April 12. The electricity industry quietly spread climate denial for years. *The Atlantic*.`
	result := Validate(meta, cite, models.CitationAPA)
	require.False(t, result.IsValid)
	require.Contains(t, result.Hints, "In APA format, the date should be in parentheses.")
}

func TestReferenceFormats(t *testing.T) {
	require.Equal(t,
		`Meyer, Robinson. "The Electricity Industry Quietly Spread Climate Denial for Years." *The Atlantic*, 12 Apr. 2023.`,
		Reference(meta, models.CitationMLA))
	require.Equal(t,
		`Meyer, Robinson. "The Electricity Industry Quietly Spread Climate Denial for Years." *The Atlantic*, April 12, 2023.`,
		Reference(meta, models.CitationChicago))

	apa := Reference(meta, models.CitationAPA)
	require.Contains(t, apa, "Meyer, R. (2023, April 12).")
	require.Contains(t, apa, "*The Atlantic*.")
}

func TestFormatTablesCoverAllStyles(t *testing.T) {
	for _, style := range []models.CitationStyle{models.CitationMLA, models.CitationAPA, models.CitationChicago} {
		require.NotEmpty(t, FormatExamples[style])
		require.NotEmpty(t, FormatDescriptions[style])
	}
}
