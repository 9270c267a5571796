package ai

import "context"

// QuestionInput carries the student's working context for question generation.
type QuestionInput struct {
	Topic        string
	Category     string
	EssayExcerpt string
	Highlights   []string
	WordCount    int
}

// QuestionGenerator describes an AI model that produces one Socratic
// question. Implementations must ask, never answer.
type QuestionGenerator interface {
	GenerateQuestion(ctx context.Context, input QuestionInput) (string, error)
}
