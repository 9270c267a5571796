package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/models"
	"github.com/thebeat-edu/beat-go-api/internal/store"
)

// ResearchService exposes highlight and note operations for one scope at a
// time. The scope string comes straight from the URL and is parsed here.
type ResearchService interface {
	Highlights(ctx context.Context, scope string) ([]models.Highlight, error)
	HighlightsForArticle(ctx context.Context, scope, articleID string) ([]models.Highlight, error)
	AddHighlight(ctx context.Context, scope string, payload dto.HighlightRequest) (models.Highlight, error)
	RemoveHighlight(ctx context.Context, scope, id string) error
	ReplaceHighlights(ctx context.Context, scope string, payload dto.HighlightReplaceRequest) error
	Notes(ctx context.Context, scope string) ([]models.Note, error)
	NotesForArticle(ctx context.Context, scope, articleID string) ([]models.Note, error)
	AddNote(ctx context.Context, scope string, payload dto.NoteRequest) (models.Note, error)
	UpdateNote(ctx context.Context, scope, id string, payload dto.NoteUpdateRequest) error
	RemoveNote(ctx context.Context, scope, id string) error
	ReplaceNotes(ctx context.Context, scope string, payload dto.NoteReplaceRequest) error
}

type researchService struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewResearchService constructs the research service.
func NewResearchService(st *store.Store, validator *validator.Validate, logger zerolog.Logger) ResearchService {
	return &researchService{
		store:     st,
		validator: validator,
		logger:    logger.With().Str("component", "research_service").Logger(),
	}
}

func (s *researchService) Highlights(_ context.Context, scope string) ([]models.Highlight, error) {
	parsed, err := store.ParseScope(scope)
	if err != nil {
		return nil, err
	}
	return s.store.Highlights(parsed), nil
}

func (s *researchService) HighlightsForArticle(_ context.Context, scope, articleID string) ([]models.Highlight, error) {
	parsed, err := store.ParseScope(scope)
	if err != nil {
		return nil, err
	}
	return s.store.HighlightsForArticle(parsed, articleID), nil
}

func (s *researchService) AddHighlight(_ context.Context, scope string, payload dto.HighlightRequest) (models.Highlight, error) {
	parsed, err := store.ParseScope(scope)
	if err != nil {
		return models.Highlight{}, err
	}
	if err := s.validator.Struct(payload); err != nil {
		return models.Highlight{}, err
	}

	highlight := models.Highlight{
		ID:           payload.ID,
		ArticleID:    payload.ArticleID,
		ArticleTitle: strings.TrimSpace(payload.ArticleTitle),
		Text:         payload.Text,
	}
	if highlight.ID == "" {
		highlight.ID = "highlight-" + uuid.NewString()
	}

	s.store.AddHighlight(parsed, highlight)
	return highlight, nil
}

func (s *researchService) RemoveHighlight(_ context.Context, scope, id string) error {
	parsed, err := store.ParseScope(scope)
	if err != nil {
		return err
	}
	s.store.RemoveHighlight(parsed, id)
	return nil
}

func (s *researchService) ReplaceHighlights(_ context.Context, scope string, payload dto.HighlightReplaceRequest) error {
	parsed, err := store.ParseScope(scope)
	if err != nil {
		return err
	}
	if err := s.validator.Struct(payload); err != nil {
		return err
	}

	highlights := make([]models.Highlight, 0, len(payload.Highlights))
	for _, item := range payload.Highlights {
		highlight := models.Highlight{
			ID:           item.ID,
			ArticleID:    item.ArticleID,
			ArticleTitle: strings.TrimSpace(item.ArticleTitle),
			Text:         item.Text,
		}
		if highlight.ID == "" {
			highlight.ID = "highlight-" + uuid.NewString()
		}
		highlights = append(highlights, highlight)
	}

	s.store.ReplaceHighlights(parsed, highlights)
	return nil
}

func (s *researchService) Notes(_ context.Context, scope string) ([]models.Note, error) {
	parsed, err := store.ParseScope(scope)
	if err != nil {
		return nil, err
	}
	return s.store.Notes(parsed), nil
}

func (s *researchService) NotesForArticle(_ context.Context, scope, articleID string) ([]models.Note, error) {
	parsed, err := store.ParseScope(scope)
	if err != nil {
		return nil, err
	}
	return s.store.NotesForArticle(parsed, articleID), nil
}

func (s *researchService) AddNote(_ context.Context, scope string, payload dto.NoteRequest) (models.Note, error) {
	parsed, err := store.ParseScope(scope)
	if err != nil {
		return models.Note{}, err
	}
	if err := s.validator.Struct(payload); err != nil {
		return models.Note{}, err
	}

	note := models.Note{
		ID:        payload.ID,
		ArticleID: payload.ArticleID,
		Content:   payload.Content,
	}
	if note.ID == "" {
		note.ID = "note-" + uuid.NewString()
	}

	s.store.AddNote(parsed, note)
	return note, nil
}

func (s *researchService) UpdateNote(_ context.Context, scope, id string, payload dto.NoteUpdateRequest) error {
	parsed, err := store.ParseScope(scope)
	if err != nil {
		return err
	}
	if err := s.validator.Struct(payload); err != nil {
		return err
	}
	s.store.UpdateNote(parsed, id, payload.Content)
	return nil
}

func (s *researchService) RemoveNote(_ context.Context, scope, id string) error {
	parsed, err := store.ParseScope(scope)
	if err != nil {
		return err
	}
	s.store.RemoveNote(parsed, id)
	return nil
}

func (s *researchService) ReplaceNotes(_ context.Context, scope string, payload dto.NoteReplaceRequest) error {
	parsed, err := store.ParseScope(scope)
	if err != nil {
		return err
	}
	if err := s.validator.Struct(payload); err != nil {
		return err
	}

	notes := make([]models.Note, 0, len(payload.Notes))
	for _, item := range payload.Notes {
		note := models.Note{
			ID:        item.ID,
			ArticleID: item.ArticleID,
			Content:   item.Content,
		}
		if note.ID == "" {
			note.ID = "note-" + uuid.NewString()
		}
		notes = append(notes, note)
	}

	s.store.ReplaceNotes(parsed, notes)
	return nil
}
