package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/store"
)

func newClassroomService(t *testing.T) (ClassroomService, *store.Store) {
	t.Helper()
	st := newTestStore(t)
	return NewClassroomService(st, testValidator(), testLogger()), st
}

func TestClassroomCreateRejectsShortTitle(t *testing.T) {
	svc, _ := newClassroomService(t)

	_, err := svc.Create(context.Background(), dto.ClassroomCreateRequest{TopicID: "ai-ethics", Title: "ai"})
	require.Error(t, err)
}

func TestClassroomCreateTrimsFields(t *testing.T) {
	svc, _ := newClassroomService(t)

	classroom, err := svc.Create(context.Background(), dto.ClassroomCreateRequest{
		TopicID:          "ai-ethics",
		Title:            "  AI and Society  ",
		ExcludedKeywords: []string{" opinion ", ""},
	})
	require.NoError(t, err)
	require.Equal(t, "AI and Society", classroom.Title)
	require.Equal(t, []string{"opinion"}, classroom.ExcludedKeywords)
	require.NotEmpty(t, classroom.ShareCode)
}

func TestClassroomJoinNormalizesShareCode(t *testing.T) {
	svc, st := newClassroomService(t)

	created, err := svc.Create(context.Background(), dto.ClassroomCreateRequest{TopicID: "ai-ethics", Title: "AI and Society"})
	require.NoError(t, err)

	joined, err := svc.Join(context.Background(), dto.ClassroomJoinRequest{
		ShareCode: "  " + strings.ToLower(created.ShareCode) + "  ",
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, joined.ID)
	require.True(t, st.HasJoined(created.ID))
}

func TestClassroomJoinUnknownCode(t *testing.T) {
	svc, _ := newClassroomService(t)

	_, err := svc.Join(context.Background(), dto.ClassroomJoinRequest{ShareCode: "NOPE-0000"})
	require.ErrorIs(t, err, ErrShareCodeNotFound)
}

func TestClassroomUpdatePromptUnknownID(t *testing.T) {
	svc, _ := newClassroomService(t)

	_, err := svc.UpdatePrompt(context.Background(), "missing", dto.AssignmentPromptRequest{
		AssignmentPrompt: "Write about something important.",
	})
	require.ErrorIs(t, err, store.ErrClassroomNotFound)
}

func TestClassroomSetCurrentClears(t *testing.T) {
	svc, _ := newClassroomService(t)

	created, err := svc.Create(context.Background(), dto.ClassroomCreateRequest{TopicID: "ai-ethics", Title: "AI and Society"})
	require.NoError(t, err)

	require.NoError(t, svc.SetCurrent(context.Background(), created.ID))
	current, ok := svc.Current(context.Background())
	require.True(t, ok)
	require.Equal(t, created.ID, current.ID)

	require.NoError(t, svc.SetCurrent(context.Background(), ""))
	_, ok = svc.Current(context.Background())
	require.False(t, ok)
}
