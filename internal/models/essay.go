package models

import "time"

// SubmittedEssay is an immutable, timestamped snapshot of a student's essay.
type SubmittedEssay struct {
	ID          string    `json:"id"`
	ClassroomID string    `json:"classroomId"`
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"`
	HTMLContent string    `json:"htmlContent"`
	SubmittedAt time.Time `json:"submittedAt"`
}
