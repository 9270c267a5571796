package store

import (
	"fmt"

	"github.com/thebeat-edu/beat-go-api/internal/models"
)

// SetEssay replaces the current draft wholesale. No version history is kept.
func (s *Store) SetEssay(html string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.essay = html
	s.persistLocked()
}

// Essay returns the current draft.
func (s *Store) Essay() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.essay
}

// SetCitation upserts the citation string for one article.
func (s *Store) SetCitation(articleID, citation string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.citations[articleID] = citation
	s.persistLocked()
}

// Citations returns a copy of the citation map.
func (s *Store) Citations() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.citations))
	for k, v := range s.citations {
		out[k] = v
	}
	return out
}

// ClearCitations empties the citation map, typically after a submission.
func (s *Store) ClearCitations() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.citations = map[string]string{}
	s.persistLocked()
}

// SubmitEssay appends an immutable submission record stamped with the
// current identity, falling back to the anonymous placeholder. The draft and
// citations are left untouched; callers orchestrate clearing separately.
func (s *Store) SubmitEssay(classroomID, htmlContent string) models.SubmittedEssay {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	user := models.Anonymous()
	if s.user != nil {
		user = *s.user
	}

	submission := models.SubmittedEssay{
		ID:          fmt.Sprintf("essay-%d", now.UnixNano()),
		ClassroomID: classroomID,
		StudentID:   user.ID,
		StudentName: user.Name,
		HTMLContent: htmlContent,
		SubmittedAt: now,
	}
	s.submittedEssays = append(s.submittedEssays, submission)
	s.persistLocked()

	s.logger.Info().
		Str("submission_id", submission.ID).
		Str("classroom_id", classroomID).
		Msg("essay submitted")

	return submission
}

// SubmittedEssays returns submissions in append order. A non-empty
// classroomID restricts the result to that classroom.
func (s *Store) SubmittedEssays(classroomID string) []models.SubmittedEssay {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if classroomID == "" {
		return append([]models.SubmittedEssay(nil), s.submittedEssays...)
	}
	out := make([]models.SubmittedEssay, 0, len(s.submittedEssays))
	for _, e := range s.submittedEssays {
		if e.ClassroomID == classroomID {
			out = append(out, e)
		}
	}
	return out
}
