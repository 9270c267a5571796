// Package socratic picks guiding questions for students. The tutor only
// ever asks questions; it never gives answers.
package socratic

// Category groups questions by what prompted them.
type Category string

// Question categories.
const (
	CategorySourceAnalysis    Category = "source_analysis"
	CategoryArgumentStructure Category = "argument_structure"
	CategoryDeeperThinking    Category = "deeper_thinking"
	CategoryStuck             Category = "stuck"
	CategoryMilestone         Category = "milestone"
)

// Valid reports whether the category is known.
func (c Category) Valid() bool {
	_, ok := questionBank[c]
	return ok
}

var questionBank = map[Category][]string{
	CategorySourceAnalysis: {
		"You've cited this source about climate denial. What counterargument might someone raise?",
		"Your essay mentions the 1.5 degree goal. Why does this specific number matter?",
		"You've highlighted conflicting perspectives. How do you reconcile them?",
		"Which of your sources provides the strongest evidence for your argument? What makes it compelling?",
		"What assumptions does this source make that might be worth examining?",
		"If you were a skeptic reading this source, what questions would you ask?",
	},
	CategoryArgumentStructure: {
		"What is the strongest objection someone could make to your main argument?",
		"You've made a claim here - what evidence would make it even more convincing?",
		"How would your argument change if you had to convince someone who disagrees?",
		"What's the logical connection between this paragraph and your thesis?",
		"Are there any gaps in your reasoning that a careful reader might notice?",
	},
	CategoryDeeperThinking: {
		"Who benefits from the perspective presented in this article? Who might be harmed?",
		"What historical context might help readers understand this climate debate?",
		"How might someone from a different country or background view this issue?",
		"What questions does your essay leave unanswered?",
		"If you wrote this essay again in 10 years, what might you add or change?",
		"What's the most uncomfortable implication of the evidence you've gathered?",
	},
	CategoryStuck: {
		"What part of your argument feels most uncertain to you right now?",
		"If you had to summarize your essay in one sentence, what would it be?",
		"What would a reader need to know before reading your next paragraph?",
		"What's the most important point you haven't written yet?",
		"Looking at your highlights, which one hasn't made it into your essay yet?",
	},
	CategoryMilestone: {
		"Now that you've started, what direction is your argument taking?",
		"You're building momentum. What's the strongest point you want to make?",
		"You've got a solid foundation. What counterargument should you address?",
		"Your essay is taking shape. How will you bring it to a strong conclusion?",
	},
}

var highlightTemplates = []string{
	"You highlighted: \"%s\". How does this connect to your main argument?",
	"This highlight suggests an important point. Have you explored why this matters?",
	"You saved this quote. What would someone who disagrees with it say?",
	"This passage caught your attention. What deeper question does it raise?",
}
