package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
)

func newResearchService(t *testing.T) ResearchService {
	t.Helper()
	return NewResearchService(newTestStore(t), testValidator(), testLogger())
}

func TestAddHighlightAssignsID(t *testing.T) {
	svc := newResearchService(t)

	highlight, err := svc.AddHighlight(context.Background(), "student", dto.HighlightRequest{
		ArticleID: "676065:1",
		Text:      "a passage worth keeping",
	})
	require.NoError(t, err)
	require.NotEmpty(t, highlight.ID)

	highlights, err := svc.Highlights(context.Background(), "student")
	require.NoError(t, err)
	require.Len(t, highlights, 1)
	require.Equal(t, highlight.ID, highlights[0].ID)
}

func TestResearchRejectsUnknownScope(t *testing.T) {
	svc := newResearchService(t)

	_, err := svc.Highlights(context.Background(), "admin")
	require.Error(t, err)
}

func TestScopesStayIndependent(t *testing.T) {
	svc := newResearchService(t)

	_, err := svc.AddNote(context.Background(), "teacher", dto.NoteRequest{ArticleID: "1:1", Content: "prep note"})
	require.NoError(t, err)

	studentNotes, err := svc.Notes(context.Background(), "student")
	require.NoError(t, err)
	require.Empty(t, studentNotes)

	teacherNotes, err := svc.Notes(context.Background(), "teacher")
	require.NoError(t, err)
	require.Len(t, teacherNotes, 1)
}

func TestReplaceNotesDiscardsPrevious(t *testing.T) {
	svc := newResearchService(t)

	_, err := svc.AddNote(context.Background(), "student", dto.NoteRequest{ID: "n1", ArticleID: "1:1", Content: "old"})
	require.NoError(t, err)

	err = svc.ReplaceNotes(context.Background(), "student", dto.NoteReplaceRequest{
		Notes: []dto.NoteRequest{{ArticleID: "2:1", Content: "new"}},
	})
	require.NoError(t, err)

	notes, err := svc.Notes(context.Background(), "student")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, "new", notes[0].Content)
	require.NotEmpty(t, notes[0].ID)
}

func TestAddNoteWithoutArticle(t *testing.T) {
	svc := newResearchService(t)

	note, err := svc.AddNote(context.Background(), "student", dto.NoteRequest{
		Content: "General research note not tied to any article",
	})
	require.NoError(t, err)
	require.Empty(t, note.ArticleID)

	notes, err := svc.Notes(context.Background(), "student")
	require.NoError(t, err)
	require.Len(t, notes, 1)

	err = svc.ReplaceNotes(context.Background(), "student", dto.NoteReplaceRequest{
		Notes: []dto.NoteRequest{{Content: "still no article"}},
	})
	require.NoError(t, err)
}

func TestUpdateNoteContent(t *testing.T) {
	svc := newResearchService(t)

	note, err := svc.AddNote(context.Background(), "student", dto.NoteRequest{ArticleID: "1:1", Content: "draft thought"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateNote(context.Background(), "student", note.ID, dto.NoteUpdateRequest{Content: "refined thought"}))

	notes, err := svc.NotesForArticle(context.Background(), "student", "1:1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, "refined thought", notes[0].Content)
}
