package store

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/thebeat-edu/beat-go-api/internal/models"
)

// ErrClassroomNotFound is returned by targeted classroom updates when no
// classroom with the given id exists in the registry.
var ErrClassroomNotFound = errors.New("classroom not found")

const shareCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ClassroomConfig carries the teacher-supplied fields for a new classroom.
type ClassroomConfig struct {
	TopicID          string
	Title            string
	AssignmentPrompt string
	CitationStyle    models.CitationStyle
	ExcludedKeywords []string
	CustomArticles   []string
}

// CreateClassroom generates a new classroom with a time-derived id and a
// share code derived from the topic, appends it to the registry, and returns
// it.
func (s *Store) CreateClassroom(cfg ClassroomConfig) models.Classroom {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	style := cfg.CitationStyle
	if !style.Valid() {
		style = models.CitationMLA
	}

	teacherID := "demo-teacher"
	if s.user != nil {
		teacherID = s.user.ID
	}

	classroom := models.Classroom{
		ID:               fmt.Sprintf("classroom-%d", now.UnixNano()),
		TopicID:          cfg.TopicID,
		TeacherID:        teacherID,
		Title:            cfg.Title,
		AssignmentPrompt: cfg.AssignmentPrompt,
		ShareCode:        s.generateShareCodeLocked(cfg.TopicID),
		CitationStyle:    style,
		ExcludedKeywords: append([]string(nil), cfg.ExcludedKeywords...),
		CustomArticles:   append([]string(nil), cfg.CustomArticles...),
		CreatedAt:        now,
	}

	s.createdClassrooms = append(s.createdClassrooms, classroom)
	s.persistLocked()

	s.logger.Info().
		Str("classroom_id", classroom.ID).
		Str("share_code", classroom.ShareCode).
		Msg("classroom created")

	return classroom
}

// generateShareCodeLocked builds a human-typable code of the form
// PREFIX-YEARxx. Generation is probabilistic, so the registry is consulted
// and the code regenerated on collision; after a few attempts a uuid-derived
// suffix guarantees progress.
func (s *Store) generateShareCodeLocked(topicID string) string {
	prefix := topicPrefix(topicID)
	year := s.now().Year()

	for attempt := 0; attempt < 5; attempt++ {
		suffix := []byte{
			shareCodeAlphabet[rand.Intn(len(shareCodeAlphabet))],
			shareCodeAlphabet[rand.Intn(len(shareCodeAlphabet))],
		}
		code := fmt.Sprintf("%s-%d%s", prefix, year, suffix)
		if !s.shareCodeTakenLocked(code) {
			return code
		}
	}

	unique := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return fmt.Sprintf("%s-%d%s", prefix, year, unique)
}

func topicPrefix(topicID string) string {
	prefix := topicID
	if i := strings.Index(prefix, "-"); i >= 0 {
		prefix = prefix[:i]
	}
	prefix = strings.ToUpper(prefix)
	if len(prefix) > 6 {
		prefix = prefix[:6]
	}
	return prefix
}

func (s *Store) shareCodeTakenLocked(code string) bool {
	for _, c := range s.createdClassrooms {
		if c.ShareCode == code {
			return true
		}
	}
	return false
}

// ClassroomByShareCode looks up a classroom by exact share code match. Case
// normalization is the caller's responsibility.
func (s *Store) ClassroomByShareCode(code string) (models.Classroom, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.createdClassrooms {
		if c.ShareCode == code {
			return c, true
		}
	}
	return models.Classroom{}, false
}

// ClassroomByID resolves a classroom id against the created registry first
// and then against enrollment records, so students who only joined a
// classroom can still resolve it.
func (s *Store) ClassroomByID(id string) (models.Classroom, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.classroomByIDLocked(id)
}

func (s *Store) classroomByIDLocked(id string) (models.Classroom, bool) {
	for _, c := range s.createdClassrooms {
		if c.ID == id {
			return c, true
		}
	}
	for _, j := range s.joinedClassrooms {
		if j.Classroom.ID == id {
			return j.Classroom, true
		}
	}
	return models.Classroom{}, false
}

// CreatedClassrooms returns the registry in creation order.
func (s *Store) CreatedClassrooms() []models.Classroom {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Classroom(nil), s.createdClassrooms...)
}

// UpdateAssignmentPrompt replaces the assignment prompt of one classroom,
// leaving all others untouched.
func (s *Store) UpdateAssignmentPrompt(id, prompt string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateClassroomLocked(id, func(c *models.Classroom) {
		c.AssignmentPrompt = prompt
	})
}

// AddCustomArticle appends an article to the classroom's custom reading
// list. Adding an article that is already present is a no-op.
func (s *Store) AddCustomArticle(id, articleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateClassroomLocked(id, func(c *models.Classroom) {
		if c.HasCustomArticle(articleID) {
			return
		}
		c.CustomArticles = append(c.CustomArticles, articleID)
	})
}

// RemoveCustomArticle drops an article from the classroom's custom reading
// list. Absent articles are a no-op.
func (s *Store) RemoveCustomArticle(id, articleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateClassroomLocked(id, func(c *models.Classroom) {
		kept := c.CustomArticles[:0]
		for _, existing := range c.CustomArticles {
			if existing != articleID {
				kept = append(kept, existing)
			}
		}
		c.CustomArticles = kept
	})
}

func (s *Store) updateClassroomLocked(id string, mutate func(*models.Classroom)) error {
	for i := range s.createdClassrooms {
		if s.createdClassrooms[i].ID == id {
			mutate(&s.createdClassrooms[i])
			s.persistLocked()
			return nil
		}
	}
	return ErrClassroomNotFound
}
