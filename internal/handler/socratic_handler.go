package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/service"
	"github.com/thebeat-edu/beat-go-api/internal/utils"
)

// SocraticHandler handles tutor question endpoints.
type SocraticHandler struct {
	service service.SocraticService
	logger  zerolog.Logger
}

// NewSocraticHandler constructs the handler.
func NewSocraticHandler(service service.SocraticService, logger zerolog.Logger) *SocraticHandler {
	return &SocraticHandler{
		service: service,
		logger:  logger.With().Str("component", "socratic_handler").Logger(),
	}
}

// Register wires tutor routes.
func (h *SocraticHandler) Register(router fiber.Router) {
	router.Post("/question", h.question)
}

func (h *SocraticHandler) question(c *fiber.Ctx) error {
	var payload dto.SocraticQuestionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	response, err := h.service.Question(c.Context(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to produce question")
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	return utils.SendSuccess(c, "question generated", response)
}
