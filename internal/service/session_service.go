package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/models"
	"github.com/thebeat-edu/beat-go-api/internal/store"
)

// SessionService tracks the ambient identity used to stamp submissions.
type SessionService interface {
	Current(ctx context.Context) dto.SessionResponse
	Set(ctx context.Context, payload dto.SessionRequest) (dto.SessionResponse, error)
	Clear(ctx context.Context)
}

type sessionService struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewSessionService constructs the session service.
func NewSessionService(st *store.Store, validator *validator.Validate, logger zerolog.Logger) SessionService {
	return &sessionService{
		store:     st,
		validator: validator,
		logger:    logger.With().Str("component", "session_service").Logger(),
	}
}

func (s *sessionService) Current(_ context.Context) dto.SessionResponse {
	user := s.store.User()
	return dto.SessionResponse{
		ID:       user.ID,
		Name:     user.Name,
		Role:     string(user.Role),
		ViewRole: string(s.store.ViewRole()),
	}
}

func (s *sessionService) Set(ctx context.Context, payload dto.SessionRequest) (dto.SessionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SessionResponse{}, err
	}

	s.store.SetUser(&models.User{
		ID:   payload.ID,
		Name: payload.Name,
		Role: models.UserRole(payload.Role),
	})
	return s.Current(ctx), nil
}

func (s *sessionService) Clear(_ context.Context) {
	s.store.SetUser(nil)
}
