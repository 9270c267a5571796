package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/thebeat-edu/beat-go-api/internal/demodata"
	"github.com/thebeat-edu/beat-go-api/internal/models"
	"github.com/thebeat-edu/beat-go-api/internal/observability"
	"github.com/thebeat-edu/beat-go-api/internal/persistence"
)

// SchemaVersion tags the persisted snapshot. Loading a snapshot with any
// other version discards it entirely; there is no field-by-field migration.
const SchemaVersion = 2

const persistTimeout = 2 * time.Second

// snapshot is the persisted subset of store state. Teacher artifacts, the
// activity ledger, identity, and the current-classroom context are
// intentionally absent and reset to defaults on load.
type snapshot struct {
	Version           int                      `json:"version"`
	DemoMode          DemoMode                 `json:"demoMode"`
	ViewRole          models.UserRole          `json:"viewRole"`
	Highlights        []models.Highlight       `json:"highlights"`
	Notes             []models.Note            `json:"notes"`
	Essay             string                   `json:"essay"`
	JoinedClassrooms  []models.Enrollment      `json:"joinedClassrooms"`
	CreatedClassrooms []models.Classroom       `json:"createdClassrooms"`
	SubmittedEssays   []models.SubmittedEssay  `json:"submittedEssays"`
	StudentCitations  map[string]string        `json:"studentCitations"`
}

func (s *Store) snapshotLocked() snapshot {
	return snapshot{
		Version:           SchemaVersion,
		DemoMode:          s.demoMode,
		ViewRole:          s.viewRole,
		Highlights:        s.student.highlights.all(),
		Notes:             s.student.notes.all(),
		Essay:             s.essay,
		JoinedClassrooms:  append([]models.Enrollment(nil), s.joinedClassrooms...),
		CreatedClassrooms: append([]models.Classroom(nil), s.createdClassrooms...),
		SubmittedEssays:   append([]models.SubmittedEssay(nil), s.submittedEssays...),
		StudentCitations:  s.citations,
	}
}

// persistLocked writes the snapshot best-effort. A failure is counted and
// logged but never surfaces to the mutation that triggered it; the
// in-memory change always stands.
func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}

	payload, err := json.Marshal(s.snapshotLocked())
	if err != nil {
		observability.SnapshotWrites().WithLabelValues("error").Inc()
		s.logger.Warn().Err(err).Msg("failed to encode state snapshot")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := s.persister.Save(ctx, payload); err != nil {
		observability.SnapshotWrites().WithLabelValues("error").Inc()
		s.logger.Warn().Err(err).Msg("failed to persist state snapshot")
		return
	}
	observability.SnapshotWrites().WithLabelValues("ok").Inc()
}

// Load rehydrates persisted state. A missing snapshot keeps the defaults. A
// snapshot whose version does not exactly match SchemaVersion is discarded
// and replaced by fresh defaults; callers tolerate the data loss. After any
// successful load the demo classroom is re-injected if absent.
func (s *Store) Load(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}

	payload, err := s.persister.Load(ctx)
	if errors.Is(err, persistence.ErrNotFound) {
		s.logger.Info().Msg("no persisted snapshot, starting from defaults")
		return nil
	}
	if err != nil {
		return err
	}

	var snap snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		s.logger.Warn().Err(err).Msg("discarding unreadable snapshot")
		s.mu.Lock()
		s.resetLocked()
		s.mu.Unlock()
		return nil
	}

	if snap.Version != SchemaVersion {
		s.logger.Warn().
			Int("stored_version", snap.Version).
			Int("expected_version", SchemaVersion).
			Msg("schema version mismatch, discarding persisted state")
		s.mu.Lock()
		s.resetLocked()
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	if snap.DemoMode.Valid() {
		s.demoMode = snap.DemoMode
	}
	if snap.ViewRole == models.RoleTeacher || snap.ViewRole == models.RoleStudent {
		s.viewRole = snap.ViewRole
	}
	s.student.highlights.replace(snap.Highlights)
	s.student.notes.replace(snap.Notes)
	s.essay = snap.Essay
	s.joinedClassrooms = append([]models.Enrollment(nil), snap.JoinedClassrooms...)
	s.createdClassrooms = ensureDemoClassroom(snap.CreatedClassrooms, s.now())
	s.submittedEssays = append([]models.SubmittedEssay(nil), snap.SubmittedEssays...)
	s.citations = map[string]string{}
	for k, v := range snap.StudentCitations {
		s.citations[k] = v
	}

	s.logger.Info().
		Int("classrooms", len(s.createdClassrooms)).
		Int("highlights", len(snap.Highlights)).
		Msg("state snapshot loaded")
	return nil
}

// ensureDemoClassroom prepends the demo classroom fixture when the registry
// does not contain it. A registry that already holds it is returned as is,
// so the fixture is never duplicated.
func ensureDemoClassroom(classrooms []models.Classroom, now time.Time) []models.Classroom {
	for _, c := range classrooms {
		if c.ID == demodata.ClassroomID {
			return append([]models.Classroom(nil), classrooms...)
		}
	}
	out := make([]models.Classroom, 0, len(classrooms)+1)
	out = append(out, demodata.Classroom(now))
	return append(out, classrooms...)
}
