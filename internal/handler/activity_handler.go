package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/service"
	"github.com/thebeat-edu/beat-go-api/internal/utils"
)

// ActivityHandler handles reading activity endpoints.
type ActivityHandler struct {
	service service.ActivityService
	logger  zerolog.Logger
}

// NewActivityHandler constructs the handler.
func NewActivityHandler(service service.ActivityService, logger zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		logger:  logger.With().Str("component", "activity_handler").Logger(),
	}
}

// Register wires activity routes.
func (h *ActivityHandler) Register(router fiber.Router) {
	router.Get("", h.summary)
	router.Post("/open", h.open)
	router.Post("/close", h.close)
}

func (h *ActivityHandler) summary(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "activity retrieved", h.service.Summary(c.Context()))
}

func (h *ActivityHandler) open(c *fiber.Ctx) error {
	var payload dto.ArticleOpenRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.OpenArticle(c.Context(), payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccess(c, "article opened", nil)
}

func (h *ActivityHandler) close(c *fiber.Ctx) error {
	var payload dto.ArticleOpenRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.CloseArticle(c.Context(), payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccess(c, "article closed", nil)
}
