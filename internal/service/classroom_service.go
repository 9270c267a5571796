package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/models"
	"github.com/thebeat-edu/beat-go-api/internal/store"
)

// ErrShareCodeNotFound is returned when a join request carries a share code
// that matches no classroom.
var ErrShareCodeNotFound = errors.New("share code not found")

// ClassroomService exposes classroom registry and enrollment operations.
type ClassroomService interface {
	Create(ctx context.Context, payload dto.ClassroomCreateRequest) (models.Classroom, error)
	Join(ctx context.Context, payload dto.ClassroomJoinRequest) (models.Classroom, error)
	Created(ctx context.Context) []models.Classroom
	Get(ctx context.Context, id string) (models.Classroom, error)
	ByShareCode(ctx context.Context, code string) (models.Classroom, error)
	Joined(ctx context.Context) []dto.EnrollmentResponse
	Current(ctx context.Context) (models.Classroom, bool)
	SetCurrent(ctx context.Context, id string) error
	UpdatePrompt(ctx context.Context, id string, payload dto.AssignmentPromptRequest) (models.Classroom, error)
	AddCustomArticle(ctx context.Context, id string, payload dto.CustomArticleRequest) (models.Classroom, error)
	RemoveCustomArticle(ctx context.Context, id string, payload dto.CustomArticleRequest) (models.Classroom, error)
}

type classroomService struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewClassroomService constructs the classroom service.
func NewClassroomService(st *store.Store, validator *validator.Validate, logger zerolog.Logger) ClassroomService {
	return &classroomService{
		store:     st,
		validator: validator,
		logger:    logger.With().Str("component", "classroom_service").Logger(),
	}
}

func (s *classroomService) Create(_ context.Context, payload dto.ClassroomCreateRequest) (models.Classroom, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Classroom{}, err
	}

	classroom := s.store.CreateClassroom(store.ClassroomConfig{
		TopicID:          strings.TrimSpace(payload.TopicID),
		Title:            strings.TrimSpace(payload.Title),
		AssignmentPrompt: strings.TrimSpace(payload.AssignmentPrompt),
		CitationStyle:    models.CitationStyle(payload.CitationStyle),
		ExcludedKeywords: trimAll(payload.ExcludedKeywords),
		CustomArticles:   trimAll(payload.CustomArticles),
	})

	s.logger.Info().Str("classroom_id", classroom.ID).Str("share_code", classroom.ShareCode).Msg("classroom created")
	return classroom, nil
}

func (s *classroomService) Join(_ context.Context, payload dto.ClassroomJoinRequest) (models.Classroom, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Classroom{}, err
	}

	code := strings.ToUpper(strings.TrimSpace(payload.ShareCode))
	classroom, ok := s.store.ClassroomByShareCode(code)
	if !ok {
		return models.Classroom{}, ErrShareCodeNotFound
	}

	s.store.Join(classroom)
	s.logger.Info().Str("classroom_id", classroom.ID).Msg("classroom joined")
	return classroom, nil
}

func (s *classroomService) Created(_ context.Context) []models.Classroom {
	return s.store.CreatedClassrooms()
}

func (s *classroomService) Get(_ context.Context, id string) (models.Classroom, error) {
	classroom, ok := s.store.ClassroomByID(id)
	if !ok {
		return models.Classroom{}, store.ErrClassroomNotFound
	}
	return classroom, nil
}

// ByShareCode resolves a classroom without joining it, so the front end can
// preview what a code points at.
func (s *classroomService) ByShareCode(_ context.Context, code string) (models.Classroom, error) {
	classroom, ok := s.store.ClassroomByShareCode(strings.ToUpper(strings.TrimSpace(code)))
	if !ok {
		return models.Classroom{}, ErrShareCodeNotFound
	}
	return classroom, nil
}

func (s *classroomService) Joined(_ context.Context) []dto.EnrollmentResponse {
	return dto.NewEnrollmentResponseSlice(s.store.JoinedClassrooms())
}

func (s *classroomService) Current(_ context.Context) (models.Classroom, bool) {
	return s.store.CurrentClassroom()
}

func (s *classroomService) SetCurrent(_ context.Context, id string) error {
	if id == "" {
		s.store.SetCurrentClassroom(nil)
		return nil
	}

	classroom, ok := s.store.ClassroomByID(id)
	if !ok {
		return store.ErrClassroomNotFound
	}
	s.store.SetCurrentClassroom(&classroom)
	return nil
}

func (s *classroomService) UpdatePrompt(_ context.Context, id string, payload dto.AssignmentPromptRequest) (models.Classroom, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Classroom{}, err
	}

	if err := s.store.UpdateAssignmentPrompt(id, strings.TrimSpace(payload.AssignmentPrompt)); err != nil {
		return models.Classroom{}, err
	}

	classroom, _ := s.store.ClassroomByID(id)
	return classroom, nil
}

func (s *classroomService) AddCustomArticle(_ context.Context, id string, payload dto.CustomArticleRequest) (models.Classroom, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Classroom{}, err
	}

	if err := s.store.AddCustomArticle(id, payload.ArticleID); err != nil {
		return models.Classroom{}, err
	}

	classroom, _ := s.store.ClassroomByID(id)
	return classroom, nil
}

func (s *classroomService) RemoveCustomArticle(_ context.Context, id string, payload dto.CustomArticleRequest) (models.Classroom, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Classroom{}, err
	}

	if err := s.store.RemoveCustomArticle(id, payload.ArticleID); err != nil {
		return models.Classroom{}, err
	}

	classroom, _ := s.store.ClassroomByID(id)
	return classroom, nil
}

func trimAll(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
