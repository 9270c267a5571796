package models

import "time"

// CitationStyle identifies the citation format a classroom requires.
type CitationStyle string

// Supported citation styles.
const (
	CitationMLA     CitationStyle = "mla"
	CitationAPA     CitationStyle = "apa"
	CitationChicago CitationStyle = "chicago"
)

// Valid reports whether the style is one of the supported formats.
func (s CitationStyle) Valid() bool {
	switch s {
	case CitationMLA, CitationAPA, CitationChicago:
		return true
	}
	return false
}

// Classroom is a bounded research assignment created by a teacher. Students
// join it with the share code.
type Classroom struct {
	ID               string        `json:"id"`
	TopicID          string        `json:"topicId"`
	TeacherID        string        `json:"teacherId"`
	Title            string        `json:"title"`
	AssignmentPrompt string        `json:"assignmentPrompt"`
	ShareCode        string        `json:"shareCode"`
	CitationStyle    CitationStyle `json:"citationStyle,omitempty"`
	ExcludedKeywords []string      `json:"excludedKeywords,omitempty"`
	CustomArticles   []string      `json:"customArticles,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
}

// HasCustomArticle reports whether the article is already part of the
// classroom's custom reading list.
func (c Classroom) HasCustomArticle(articleID string) bool {
	for _, id := range c.CustomArticles {
		if id == articleID {
			return true
		}
	}
	return false
}

// Enrollment records that a student joined a classroom. At most one record
// exists per classroom id.
type Enrollment struct {
	Classroom Classroom `json:"classroom"`
	JoinedAt  time.Time `json:"joinedAt"`
}
