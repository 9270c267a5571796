package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/models"
	"github.com/thebeat-edu/beat-go-api/internal/socratic"
	"github.com/thebeat-edu/beat-go-api/internal/store"
	"github.com/thebeat-edu/beat-go-api/internal/utils"
	"github.com/thebeat-edu/beat-go-api/pkg/ai"
)

const (
	essayExcerptLimit   = 600
	maxPromptHighlights = 5

	sourceBank = "bank"
	sourceAI   = "ai"
)

// SocraticService produces tutoring questions. A language model is used when
// one is configured; the curated question bank is both the fallback and the
// default.
type SocraticService interface {
	Question(ctx context.Context, payload dto.SocraticQuestionRequest) (dto.SocraticQuestionResponse, error)
}

type socraticService struct {
	store     *store.Store
	picker    *socratic.Picker
	generator ai.QuestionGenerator
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewSocraticService constructs the tutor service. The generator may be nil.
func NewSocraticService(st *store.Store, picker *socratic.Picker, generator ai.QuestionGenerator, validator *validator.Validate, logger zerolog.Logger) SocraticService {
	if picker == nil {
		picker = socratic.NewPicker()
	}
	return &socraticService{
		store:     st,
		picker:    picker,
		generator: generator,
		validator: validator,
		logger:    logger.With().Str("component", "socratic_service").Logger(),
	}
}

func (s *socraticService) Question(ctx context.Context, payload dto.SocraticQuestionRequest) (dto.SocraticQuestionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SocraticQuestionResponse{}, err
	}

	essay := s.store.Essay()
	wordCount := utils.CountWords(essay)
	highlights := s.store.Highlights(store.ScopeStudent)

	category := socratic.Category(payload.Category)
	if payload.Category == "" {
		category = s.defaultCategory(wordCount, len(highlights))
	}

	if s.generator != nil {
		if question, err := s.generate(ctx, payload, category, essay, wordCount); err == nil {
			return dto.SocraticQuestionResponse{Question: question, Category: string(category), Source: sourceAI}, nil
		} else {
			s.logger.Warn().Err(err).Msg("ai question generation failed, falling back to question bank")
		}
	}

	question, err := s.pick(category, payload.UsedQuestions, wordCount, highlights)
	if err != nil {
		return dto.SocraticQuestionResponse{}, err
	}
	return dto.SocraticQuestionResponse{Question: question, Category: string(category), Source: sourceBank}, nil
}

func (s *socraticService) defaultCategory(wordCount, highlightCount int) socratic.Category {
	switch {
	case wordCount > 0:
		return socratic.CategoryMilestone
	case highlightCount > 0:
		return socratic.CategorySourceAnalysis
	default:
		return socratic.CategoryStuck
	}
}

func (s *socraticService) pick(category socratic.Category, used []string, wordCount int, highlights []models.Highlight) (string, error) {
	switch category {
	case socratic.CategoryMilestone:
		return s.picker.MilestoneQuestion(wordCount), nil
	case socratic.CategorySourceAnalysis:
		if question, ok := s.picker.PickForHighlight(highlights); ok {
			return question, nil
		}
	}
	return s.picker.Pick(category, used)
}

func (s *socraticService) generate(ctx context.Context, payload dto.SocraticQuestionRequest, category socratic.Category, essay string, wordCount int) (string, error) {
	topic := payload.Topic
	if topic == "" {
		if classroom, ok := s.store.CurrentClassroom(); ok {
			topic = classroom.TopicID
		}
	}

	excerpt := utils.StripHTML(essay)
	if len(excerpt) > essayExcerptLimit {
		excerpt = excerpt[:essayExcerptLimit]
	}

	var texts []string
	for _, highlight := range s.store.Highlights(store.ScopeStudent) {
		texts = append(texts, highlight.Text)
		if len(texts) == maxPromptHighlights {
			break
		}
	}

	return s.generator.GenerateQuestion(ctx, ai.QuestionInput{
		Topic:        topic,
		Category:     string(category),
		EssayExcerpt: excerpt,
		Highlights:   texts,
		WordCount:    wordCount,
	})
}
