package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/models"
	"github.com/thebeat-edu/beat-go-api/internal/socratic"
	"github.com/thebeat-edu/beat-go-api/internal/store"
	"github.com/thebeat-edu/beat-go-api/pkg/ai"
)

type generatorStub struct {
	question string
	err      error
	input    ai.QuestionInput
}

func (g *generatorStub) GenerateQuestion(_ context.Context, input ai.QuestionInput) (string, error) {
	g.input = input
	return g.question, g.err
}

func TestQuestionDefaultsToStuckOnEmptyWorkspace(t *testing.T) {
	svc := NewSocraticService(newTestStore(t), socratic.NewPicker(), nil, testValidator(), testLogger())

	resp, err := svc.Question(context.Background(), dto.SocraticQuestionRequest{})
	require.NoError(t, err)
	require.Equal(t, string(socratic.CategoryStuck), resp.Category)
	require.Equal(t, "bank", resp.Source)
	require.NotEmpty(t, resp.Question)
}

func TestQuestionUsesMilestoneWhenEssayHasWords(t *testing.T) {
	st := newTestStore(t)
	st.SetEssay("<p>one two three four five</p>")
	svc := NewSocraticService(st, socratic.NewPicker(), nil, testValidator(), testLogger())

	resp, err := svc.Question(context.Background(), dto.SocraticQuestionRequest{})
	require.NoError(t, err)
	require.Equal(t, string(socratic.CategoryMilestone), resp.Category)
}

func TestQuestionPrefersHighlightsBeforeWriting(t *testing.T) {
	st := newTestStore(t)
	st.AddHighlight(store.ScopeStudent, models.Highlight{ID: "h1", ArticleID: "1:1", Text: "a striking claim"})
	svc := NewSocraticService(st, socratic.NewPicker(), nil, testValidator(), testLogger())

	resp, err := svc.Question(context.Background(), dto.SocraticQuestionRequest{})
	require.NoError(t, err)
	require.Equal(t, string(socratic.CategorySourceAnalysis), resp.Category)
	require.Contains(t, resp.Question, "a striking claim")
}

func TestQuestionRejectsUnknownCategory(t *testing.T) {
	svc := NewSocraticService(newTestStore(t), socratic.NewPicker(), nil, testValidator(), testLogger())

	_, err := svc.Question(context.Background(), dto.SocraticQuestionRequest{Category: "gossip"})
	require.Error(t, err)
}

func TestQuestionUsesGeneratorWhenConfigured(t *testing.T) {
	st := newTestStore(t)
	st.SetEssay("<p>climate essay in progress</p>")
	generator := &generatorStub{question: "What evidence would change your mind?"}
	svc := NewSocraticService(st, socratic.NewPicker(), generator, testValidator(), testLogger())

	resp, err := svc.Question(context.Background(), dto.SocraticQuestionRequest{Topic: "climate-change"})
	require.NoError(t, err)
	require.Equal(t, "ai", resp.Source)
	require.Equal(t, "What evidence would change your mind?", resp.Question)
	require.Equal(t, "climate-change", generator.input.Topic)
	require.Equal(t, 4, generator.input.WordCount)
}

func TestQuestionFallsBackWhenGeneratorFails(t *testing.T) {
	generator := &generatorStub{err: errors.New("model unavailable")}
	svc := NewSocraticService(newTestStore(t), socratic.NewPicker(), generator, testValidator(), testLogger())

	resp, err := svc.Question(context.Background(), dto.SocraticQuestionRequest{Category: string(socratic.CategoryStuck)})
	require.NoError(t, err)
	require.Equal(t, "bank", resp.Source)
	require.NotEmpty(t, resp.Question)
}
