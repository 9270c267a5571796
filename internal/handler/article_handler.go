package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/service"
	"github.com/thebeat-edu/beat-go-api/internal/utils"
)

// ArticleHandler handles archive search endpoints.
type ArticleHandler struct {
	service service.ArticleService
	logger  zerolog.Logger
}

// NewArticleHandler constructs the handler.
func NewArticleHandler(service service.ArticleService, logger zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		service: service,
		logger:  logger.With().Str("component", "article_handler").Logger(),
	}
}

// Register wires article routes.
func (h *ArticleHandler) Register(router fiber.Router) {
	router.Post("/search", h.search)
	router.Get("/topics", h.topics)
}

func (h *ArticleHandler) search(c *fiber.Ctx) error {
	var payload dto.ArticleSearchRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.Search(c.Context(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("article search failed")
		return utils.SendError(c, fiber.StatusBadGateway, "article search failed")
	}

	if result.CacheHit {
		c.Set("X-Cache-Hit", "true")
	} else {
		c.Set("X-Cache-Hit", "false")
	}

	return utils.SendSuccess(c, "articles retrieved", result)
}

func (h *ArticleHandler) topics(c *fiber.Ctx) error {
	topics, err := h.service.Topics(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("topic listing failed")
		return utils.SendError(c, fiber.StatusBadGateway, "topic listing failed")
	}
	return utils.SendSuccess(c, "topics retrieved", topics)
}
