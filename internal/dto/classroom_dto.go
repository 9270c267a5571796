package dto

import (
	"time"

	"github.com/thebeat-edu/beat-go-api/internal/models"
)

// ClassroomCreateRequest describes the payload for creating a classroom.
type ClassroomCreateRequest struct {
	TopicID          string   `json:"topicId" validate:"required,min=2"`
	Title            string   `json:"title" validate:"required,min=3"`
	AssignmentPrompt string   `json:"assignmentPrompt" validate:"omitempty,min=10"`
	CitationStyle    string   `json:"citationStyle" validate:"omitempty,oneof=mla apa chicago"`
	ExcludedKeywords []string `json:"excludedKeywords" validate:"omitempty,dive,min=1"`
	CustomArticles   []string `json:"customArticles" validate:"omitempty,dive,min=1"`
}

// ClassroomJoinRequest carries the share code a student enters.
type ClassroomJoinRequest struct {
	ShareCode string `json:"shareCode" validate:"required,min=4"`
}

// AssignmentPromptRequest updates the assignment prompt of a classroom.
type AssignmentPromptRequest struct {
	AssignmentPrompt string `json:"assignmentPrompt" validate:"required,min=10"`
}

// CustomArticleRequest pins or unpins one article on a classroom.
type CustomArticleRequest struct {
	ArticleID string `json:"articleId" validate:"required"`
}

// CurrentClassroomRequest selects the student's working classroom. An empty
// id clears the selection.
type CurrentClassroomRequest struct {
	ClassroomID string `json:"classroomId"`
}

// EnrollmentResponse is one joined classroom with its join timestamp.
type EnrollmentResponse struct {
	Classroom models.Classroom `json:"classroom"`
	JoinedAt  time.Time        `json:"joinedAt"`
}

// NewEnrollmentResponseSlice converts enrollments into DTOs.
func NewEnrollmentResponseSlice(enrollments []models.Enrollment) []EnrollmentResponse {
	responses := make([]EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		responses = append(responses, EnrollmentResponse{
			Classroom: enrollment.Classroom,
			JoinedAt:  enrollment.JoinedAt,
		})
	}

	return responses
}
