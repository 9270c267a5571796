package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/store"
)

// ActivityService tracks article reading intervals.
type ActivityService interface {
	OpenArticle(ctx context.Context, payload dto.ArticleOpenRequest) error
	CloseArticle(ctx context.Context, payload dto.ArticleOpenRequest) error
	Summary(ctx context.Context) dto.ActivitySummaryResponse
}

type activityService struct {
	store     *store.Store
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewActivityService constructs the activity service.
func NewActivityService(st *store.Store, validator *validator.Validate, logger zerolog.Logger) ActivityService {
	return &activityService{
		store:     st,
		validator: validator,
		logger:    logger.With().Str("component", "activity_service").Logger(),
	}
}

func (s *activityService) OpenArticle(_ context.Context, payload dto.ArticleOpenRequest) error {
	if err := s.validator.Struct(payload); err != nil {
		return err
	}
	s.store.RecordArticleOpen(payload.ArticleID)
	return nil
}

func (s *activityService) CloseArticle(_ context.Context, payload dto.ArticleOpenRequest) error {
	if err := s.validator.Struct(payload); err != nil {
		return err
	}
	s.store.RecordArticleClose(payload.ArticleID)
	return nil
}

func (s *activityService) Summary(_ context.Context) dto.ActivitySummaryResponse {
	views := s.store.ArticleViewHistory()

	perArticle := make(map[string]int64, len(views))
	for _, view := range views {
		perArticle[view.ArticleID] = int64(s.store.ReadingTimeFor(view.ArticleID).Seconds())
	}

	return dto.ActivitySummaryResponse{
		TotalReadingSeconds: int64(s.store.TotalReadingTime().Seconds()),
		PerArticleSeconds:   perArticle,
		Views:               views,
	}
}
