package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/thebeat-edu/beat-go-api/internal/citation"
	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/models"
	"github.com/thebeat-edu/beat-go-api/internal/store"
	"github.com/thebeat-edu/beat-go-api/internal/utils"
)

// WritingService exposes the essay and citation workspace.
type WritingService interface {
	Workspace(ctx context.Context) dto.WorkspaceResponse
	SaveDraft(ctx context.Context, payload dto.EssayDraftRequest) dto.WorkspaceResponse
	SaveCitation(ctx context.Context, payload dto.CitationRequest) error
	ClearCitations(ctx context.Context)
	Submit(ctx context.Context, user *models.User, payload dto.EssaySubmitRequest) (models.SubmittedEssay, error)
	Submissions(ctx context.Context, classroomID string) []models.SubmittedEssay
	Export(ctx context.Context) dto.EssayExportResponse
	ValidateCitation(ctx context.Context, payload dto.CitationValidateRequest) (citation.Validation, error)
	CitationStyles(ctx context.Context) []dto.CitationStyleResponse
}

type writingService struct {
	store     *store.Store
	validator *validator.Validate
	policy    *bluemonday.Policy
	logger    zerolog.Logger
}

// NewWritingService constructs the writing service. The sanitization policy
// mirrors what the rich-text editor emits: headings, emphasis, lists,
// blockquotes, and links.
func NewWritingService(st *store.Store, validator *validator.Validate, logger zerolog.Logger) WritingService {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("h1", "h2", "h3", "p", "strong", "em", "u", "s", "ul", "ol", "li", "blockquote", "br", "a")
	policy.AllowAttrs("href", "title", "target").OnElements("a")

	return &writingService{
		store:     st,
		validator: validator,
		policy:    policy,
		logger:    logger.With().Str("component", "writing_service").Logger(),
	}
}

func (s *writingService) Workspace(_ context.Context) dto.WorkspaceResponse {
	essay := s.store.Essay()
	return dto.WorkspaceResponse{
		Essay:     essay,
		WordCount: utils.CountWords(essay),
		Citations: s.store.Citations(),
	}
}

func (s *writingService) SaveDraft(ctx context.Context, payload dto.EssayDraftRequest) dto.WorkspaceResponse {
	s.store.SetEssay(s.policy.Sanitize(payload.HTMLContent))
	return s.Workspace(ctx)
}

func (s *writingService) SaveCitation(_ context.Context, payload dto.CitationRequest) error {
	if err := s.validator.Struct(payload); err != nil {
		return err
	}
	s.store.SetCitation(payload.ArticleID, payload.Citation)
	return nil
}

func (s *writingService) ClearCitations(_ context.Context) {
	s.store.ClearCitations()
}

// Submit records the essay into the classroom and clears the citation map,
// so the next essay starts from a clean slate. The draft itself is kept. A
// non-nil user becomes the ambient identity before the submission is stamped.
func (s *writingService) Submit(_ context.Context, user *models.User, payload dto.EssaySubmitRequest) (models.SubmittedEssay, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.SubmittedEssay{}, err
	}
	if _, ok := s.store.ClassroomByID(payload.ClassroomID); !ok {
		return models.SubmittedEssay{}, store.ErrClassroomNotFound
	}

	if user != nil {
		s.store.SetUser(user)
	}
	submitted := s.store.SubmitEssay(payload.ClassroomID, s.policy.Sanitize(payload.HTMLContent))
	s.store.ClearCitations()

	s.logger.Info().Str("essay_id", submitted.ID).Str("classroom_id", submitted.ClassroomID).Msg("essay submitted")
	return submitted, nil
}

func (s *writingService) Submissions(_ context.Context, classroomID string) []models.SubmittedEssay {
	return s.store.SubmittedEssays(classroomID)
}

func (s *writingService) Export(_ context.Context) dto.EssayExportResponse {
	essay := s.store.Essay()
	return dto.EssayExportResponse{
		Text:      utils.StripHTML(essay),
		WordCount: utils.CountWords(essay),
	}
}

func (s *writingService) ValidateCitation(_ context.Context, payload dto.CitationValidateRequest) (citation.Validation, error) {
	if err := s.validator.Struct(payload); err != nil {
		return citation.Validation{}, err
	}

	publishedAt, err := time.Parse(time.RFC3339, payload.Article.PublishedAt)
	if err != nil {
		return citation.Validation{}, err
	}

	meta := citation.ArticleMetadata{
		Title:       payload.Article.Title,
		Author:      payload.Article.Author,
		PublishedAt: publishedAt,
		Section:     payload.Article.Section,
	}
	return citation.Validate(meta, payload.Citation, models.CitationStyle(payload.Style)), nil
}

func (s *writingService) CitationStyles(_ context.Context) []dto.CitationStyleResponse {
	styles := []models.CitationStyle{models.CitationMLA, models.CitationAPA, models.CitationChicago}
	responses := make([]dto.CitationStyleResponse, 0, len(styles))
	for _, style := range styles {
		responses = append(responses, dto.CitationStyleResponse{
			Style:       string(style),
			Example:     citation.FormatExamples[style],
			Description: citation.FormatDescriptions[style],
		})
	}
	return responses
}
