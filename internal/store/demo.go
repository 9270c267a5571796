package store

import (
	"fmt"

	"github.com/thebeat-edu/beat-go-api/internal/demodata"
	"github.com/thebeat-edu/beat-go-api/internal/models"
)

// DemoMode returns the active demo lifecycle state.
func (s *Store) DemoMode() DemoMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.demoMode
}

// SetDemoMode transitions between the fresh and accumulated universes. The
// student research artifacts, essay draft, citation map, and submission list
// are replaced wholesale under one lock, so no reader can observe a state
// where some fields were swapped and others were not.
func (s *Store) SetDemoMode(mode DemoMode) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown demo mode %q", mode)
	}

	snapshot := demodata.Fresh()
	if mode == DemoAccumulated {
		snapshot = demodata.Accumulated()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.demoMode = mode
	s.student.highlights.replace(snapshot.Highlights)
	s.student.notes.replace(snapshot.Notes)
	s.essay = snapshot.Essay
	s.submittedEssays = append([]models.SubmittedEssay(nil), snapshot.SubmittedEssays...)
	s.citations = map[string]string{}
	s.persistLocked()

	s.logger.Info().Str("demo_mode", string(mode)).Msg("demo state applied")
	return nil
}

// ViewRole returns the active view role toggle.
func (s *Store) ViewRole() models.UserRole {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewRole
}

// SetViewRole switches between the teacher and student views.
func (s *Store) SetViewRole(role models.UserRole) error {
	if role != models.RoleTeacher && role != models.RoleStudent {
		return fmt.Errorf("unknown view role %q", role)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewRole = role
	s.persistLocked()
	return nil
}
