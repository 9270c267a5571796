package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/models"
	"github.com/thebeat-edu/beat-go-api/internal/store"
)

// DemoService controls the demo lifecycle and view role toggle.
type DemoService interface {
	State(ctx context.Context) dto.DemoStateResponse
	SetMode(ctx context.Context, payload dto.DemoModeRequest) (dto.DemoStateResponse, error)
	SetViewRole(ctx context.Context, payload dto.ViewRoleRequest) (dto.DemoStateResponse, error)
}

type demoService struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewDemoService constructs the demo service.
func NewDemoService(st *store.Store, validator *validator.Validate, logger zerolog.Logger) DemoService {
	return &demoService{
		store:     st,
		validator: validator,
		logger:    logger.With().Str("component", "demo_service").Logger(),
	}
}

func (s *demoService) State(_ context.Context) dto.DemoStateResponse {
	return dto.DemoStateResponse{
		Mode:     string(s.store.DemoMode()),
		ViewRole: string(s.store.ViewRole()),
	}
}

func (s *demoService) SetMode(ctx context.Context, payload dto.DemoModeRequest) (dto.DemoStateResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.DemoStateResponse{}, err
	}
	if err := s.store.SetDemoMode(store.DemoMode(payload.Mode)); err != nil {
		return dto.DemoStateResponse{}, err
	}
	return s.State(ctx), nil
}

func (s *demoService) SetViewRole(ctx context.Context, payload dto.ViewRoleRequest) (dto.DemoStateResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.DemoStateResponse{}, err
	}
	if err := s.store.SetViewRole(models.UserRole(payload.Role)); err != nil {
		return dto.DemoStateResponse{}, err
	}
	return s.State(ctx), nil
}
