// Package store owns all mutable application state of The Beat: the
// classroom registry, enrollment ledger, research artifacts, essay and
// citation workspace, activity ledger, and the demo lifecycle that swaps
// between the live and scripted data universes.
//
// The store is an explicit, constructed object. Every mutation happens under
// one lock and, for the persisted subset of fields, triggers a best-effort
// snapshot write that never fails the mutation itself.
package store

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/thebeat-edu/beat-go-api/internal/demodata"
	"github.com/thebeat-edu/beat-go-api/internal/models"
	"github.com/thebeat-edu/beat-go-api/internal/persistence"
)

// DemoMode names the two scripted data universes.
type DemoMode string

// Demo lifecycle states.
const (
	DemoFresh       DemoMode = "fresh"
	DemoAccumulated DemoMode = "accumulated"
)

// Valid reports whether the mode is a known demo state.
func (m DemoMode) Valid() bool {
	return m == DemoFresh || m == DemoAccumulated
}

// Store is the application state container.
type Store struct {
	mu        sync.RWMutex
	persister persistence.Persister
	logger    zerolog.Logger
	now       func() time.Time

	demoMode         DemoMode
	viewRole         models.UserRole
	user             *models.User
	currentClassroom *models.Classroom

	createdClassrooms []models.Classroom
	joinedClassrooms  []models.Enrollment

	student researchSet
	teacher researchSet

	essay           string
	citations       map[string]string
	submittedEssays []models.SubmittedEssay

	articleViews []models.ArticleViewRecord
}

// New constructs a store holding default state: the demo classroom seeded,
// fresh demo mode, teacher view, and empty collections. A nil persister
// disables snapshot writes.
func New(persister persistence.Persister, logger zerolog.Logger) *Store {
	s := &Store{
		persister: persister,
		logger:    logger.With().Str("component", "store").Logger(),
		now:       time.Now,
	}
	s.resetLocked()
	return s
}

// resetLocked restores the documented default state. Callers hold the lock
// (or own the store exclusively, as in New).
func (s *Store) resetLocked() {
	s.demoMode = DemoFresh
	s.viewRole = models.RoleTeacher
	s.user = nil
	s.currentClassroom = nil
	s.createdClassrooms = []models.Classroom{demodata.Classroom(s.now())}
	s.joinedClassrooms = nil
	s.student = researchSet{}
	s.teacher = researchSet{}
	s.essay = ""
	s.citations = map[string]string{}
	s.submittedEssays = nil
	s.articleViews = nil
}

// SetUser records the active identity. Passing nil clears it.
func (s *Store) SetUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		s.user = nil
		return
	}
	u := *user
	s.user = &u
}

// User returns the active identity, falling back to the anonymous placeholder.
func (s *Store) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.Anonymous()
	}
	return *s.user
}
