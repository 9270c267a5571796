package store

import (
	"github.com/thebeat-edu/beat-go-api/internal/models"
)

// Join records the classroom in the enrollment ledger. Joining an
// already-joined classroom adds no second record, but the classroom is
// always set as the student's current context.
func (s *Store) Join(classroom models.Classroom) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasJoinedLocked(classroom.ID) {
		s.joinedClassrooms = append(s.joinedClassrooms, models.Enrollment{
			Classroom: classroom,
			JoinedAt:  s.now(),
		})
	}

	current := classroom
	s.currentClassroom = &current
	s.persistLocked()
}

// HasJoined reports whether an enrollment record exists for the classroom.
func (s *Store) HasJoined(classroomID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasJoinedLocked(classroomID)
}

func (s *Store) hasJoinedLocked(classroomID string) bool {
	for _, j := range s.joinedClassrooms {
		if j.Classroom.ID == classroomID {
			return true
		}
	}
	return false
}

// JoinedClassrooms returns the enrollment ledger in join order.
func (s *Store) JoinedClassrooms() []models.Enrollment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Enrollment(nil), s.joinedClassrooms...)
}

// CurrentClassroom returns the classroom the student is working in, if any.
func (s *Store) CurrentClassroom() (models.Classroom, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentClassroom == nil {
		return models.Classroom{}, false
	}
	return *s.currentClassroom, true
}

// SetCurrentClassroom switches the working context without touching the
// enrollment ledger. Passing nil clears the context.
func (s *Store) SetCurrentClassroom(classroom *models.Classroom) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if classroom == nil {
		s.currentClassroom = nil
		return
	}
	current := *classroom
	s.currentClassroom = &current
}
