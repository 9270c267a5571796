package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/middleware"
	"github.com/thebeat-edu/beat-go-api/internal/models"
	"github.com/thebeat-edu/beat-go-api/internal/service"
	"github.com/thebeat-edu/beat-go-api/internal/store"
	"github.com/thebeat-edu/beat-go-api/internal/utils"
)

// WritingHandler handles the essay workspace endpoints.
type WritingHandler struct {
	service service.WritingService
	logger  zerolog.Logger
}

// NewWritingHandler constructs the handler.
func NewWritingHandler(service service.WritingService, logger zerolog.Logger) *WritingHandler {
	return &WritingHandler{
		service: service,
		logger:  logger.With().Str("component", "writing_handler").Logger(),
	}
}

// Register wires workspace routes.
func (h *WritingHandler) Register(router fiber.Router) {
	router.Get("", h.workspace)
	router.Put("/essay", h.saveDraft)
	router.Get("/export", h.export)
	router.Post("/citations", h.saveCitation)
	router.Delete("/citations", h.clearCitations)
	router.Post("/citations/validate", h.validateCitation)
	router.Get("/citation-styles", h.citationStyles)
	router.Get("/submissions", h.submissions)
	router.Post("/submissions", h.submit)
}

func (h *WritingHandler) workspace(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "workspace retrieved", h.service.Workspace(c.Context()))
}

func (h *WritingHandler) saveDraft(c *fiber.Ctx) error {
	var payload dto.EssayDraftRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	return utils.SendSuccess(c, "draft saved", h.service.SaveDraft(c.Context(), payload))
}

func (h *WritingHandler) export(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "essay exported", h.service.Export(c.Context()))
}

func (h *WritingHandler) saveCitation(c *fiber.Ctx) error {
	var payload dto.CitationRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.SaveCitation(c.Context(), payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccess(c, "citation saved", nil)
}

func (h *WritingHandler) clearCitations(c *fiber.Ctx) error {
	h.service.ClearCitations(c.Context())
	return utils.SendSuccess(c, "citations cleared", nil)
}

func (h *WritingHandler) validateCitation(c *fiber.Ctx) error {
	var payload dto.CitationValidateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.ValidateCitation(c.Context(), payload)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccess(c, "citation validated", result)
}

func (h *WritingHandler) citationStyles(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "citation styles retrieved", h.service.CitationStyles(c.Context()))
}

func (h *WritingHandler) submissions(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "submissions retrieved", h.service.Submissions(c.Context(), c.Query("classroomId")))
}

func (h *WritingHandler) submit(c *fiber.Ctx) error {
	var payload dto.EssaySubmitRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	var user *models.User
	if requestUser, ok := middleware.RequestUser(c); ok {
		user = &requestUser
	}

	submitted, err := h.service.Submit(c.Context(), user, payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, store.ErrClassroomNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "classroom not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to submit essay")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to submit essay")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "essay submitted", submitted)
}
