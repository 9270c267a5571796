package socratic

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/thebeat-edu/beat-go-api/internal/models"
)

const highlightExcerptLimit = 60

// Picker selects the next question to show. Questions the student has
// already seen (tracked by the caller) are avoided until the bank for a
// category is exhausted, at which point repeats are allowed.
type Picker struct {
	intN func(int) int
}

// NewPicker constructs a picker using the default random source.
func NewPicker() *Picker {
	return &Picker{intN: rand.Intn}
}

// Pick returns a question from the category, avoiding any in used.
func (p *Picker) Pick(category Category, used []string) (string, error) {
	questions, ok := questionBank[category]
	if !ok {
		return "", fmt.Errorf("unknown question category %q", category)
	}

	available := make([]string, 0, len(questions))
	usedSet := make(map[string]bool, len(used))
	for _, q := range used {
		usedSet[q] = true
	}
	for _, q := range questions {
		if !usedSet[q] {
			available = append(available, q)
		}
	}
	if len(available) == 0 {
		available = questions
	}

	return available[p.intN(len(available))], nil
}

// PickAny returns a question from a randomly chosen reflective category.
func (p *Picker) PickAny(used []string) string {
	categories := []Category{
		CategorySourceAnalysis,
		CategoryArgumentStructure,
		CategoryDeeperThinking,
	}
	category := categories[p.intN(len(categories))]
	question, _ := p.Pick(category, used)
	return question
}

// PickForHighlight builds a question around one of the student's highlights.
// Returns false when there are no highlights to draw from.
func (p *Picker) PickForHighlight(highlights []models.Highlight) (string, bool) {
	if len(highlights) == 0 {
		return "", false
	}

	highlight := highlights[p.intN(len(highlights))]
	template := highlightTemplates[p.intN(len(highlightTemplates))]

	if !strings.Contains(template, "%s") {
		return template, true
	}

	excerpt := highlight.Text
	if len(excerpt) > highlightExcerptLimit {
		excerpt = excerpt[:highlightExcerptLimit] + "..."
	}
	return fmt.Sprintf(template, excerpt), true
}

// MilestoneQuestion returns the milestone question matching how far the
// essay has progressed. Word-count milestones land every 150 words.
func (p *Picker) MilestoneQuestion(wordCount int) string {
	milestones := questionBank[CategoryMilestone]
	index := wordCount / 150
	if index < 1 {
		index = 1
	}
	if index > len(milestones) {
		index = len(milestones)
	}
	return milestones[index-1]
}
