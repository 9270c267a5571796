package dto

// SocraticQuestionRequest asks the tutor for one question.
type SocraticQuestionRequest struct {
	Category      string   `json:"category" validate:"omitempty,oneof=source_analysis argument_structure deeper_thinking stuck milestone"`
	UsedQuestions []string `json:"usedQuestions"`
	Topic         string   `json:"topic"`
}

// SocraticQuestionResponse is the tutor's reply. Source records whether the
// question came from the curated bank or a language model.
type SocraticQuestionResponse struct {
	Question string `json:"question"`
	Category string `json:"category"`
	Source   string `json:"source"`
}

// CitationStyleResponse describes one citation format for display.
type CitationStyleResponse struct {
	Style       string   `json:"style"`
	Example     string   `json:"example"`
	Description []string `json:"description"`
}
