package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/service"
	"github.com/thebeat-edu/beat-go-api/internal/store"
	"github.com/thebeat-edu/beat-go-api/internal/utils"
)

// ClassroomHandler handles classroom registry and enrollment endpoints.
type ClassroomHandler struct {
	service service.ClassroomService
	logger  zerolog.Logger
}

// NewClassroomHandler constructs the handler.
func NewClassroomHandler(service service.ClassroomService, logger zerolog.Logger) *ClassroomHandler {
	return &ClassroomHandler{
		service: service,
		logger:  logger.With().Str("component", "classroom_handler").Logger(),
	}
}

// Register wires classroom routes.
func (h *ClassroomHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Post("/join", h.join)
	router.Get("/joined", h.joined)
	router.Get("/current", h.current)
	router.Put("/current", h.setCurrent)
	router.Get("/:id", h.get)
	router.Put("/:id/prompt", h.updatePrompt)
	router.Post("/:id/articles", h.addArticle)
	router.Delete("/:id/articles/:articleId", h.removeArticle)
}

func (h *ClassroomHandler) list(c *fiber.Ctx) error {
	if code := c.Query("shareCode"); code != "" {
		classroom, err := h.service.ByShareCode(c.Context(), code)
		if err != nil {
			return utils.SendError(c, fiber.StatusNotFound, "share code not found")
		}
		return utils.SendSuccess(c, "classroom retrieved", classroom)
	}

	return utils.SendSuccess(c, "classrooms retrieved", h.service.Created(c.Context()))
}

func (h *ClassroomHandler) create(c *fiber.Ctx) error {
	var payload dto.ClassroomCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	classroom, err := h.service.Create(c.Context(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create classroom")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create classroom")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "classroom created", classroom)
}

func (h *ClassroomHandler) join(c *fiber.Ctx) error {
	var payload dto.ClassroomJoinRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	classroom, err := h.service.Join(c.Context(), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrShareCodeNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "share code not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to join classroom")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to join classroom")
	}

	return utils.SendSuccess(c, "classroom joined", classroom)
}

func (h *ClassroomHandler) joined(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "joined classrooms retrieved", h.service.Joined(c.Context()))
}

func (h *ClassroomHandler) current(c *fiber.Ctx) error {
	classroom, ok := h.service.Current(c.Context())
	if !ok {
		return utils.SendError(c, fiber.StatusNotFound, "no current classroom")
	}
	return utils.SendSuccess(c, "current classroom retrieved", classroom)
}

func (h *ClassroomHandler) setCurrent(c *fiber.Ctx) error {
	var payload dto.CurrentClassroomRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.SetCurrent(c.Context(), payload.ClassroomID); err != nil {
		if errors.Is(err, store.ErrClassroomNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "classroom not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to set current classroom")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to set current classroom")
	}

	return utils.SendSuccess(c, "current classroom updated", payload)
}

func (h *ClassroomHandler) get(c *fiber.Ctx) error {
	classroom, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, fiber.StatusNotFound, "classroom not found")
	}
	return utils.SendSuccess(c, "classroom retrieved", classroom)
}

func (h *ClassroomHandler) updatePrompt(c *fiber.Ctx) error {
	var payload dto.AssignmentPromptRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	classroom, err := h.service.UpdatePrompt(c.Context(), c.Params("id"), payload)
	if err != nil {
		return h.classroomUpdateError(c, err, "failed to update assignment prompt")
	}
	return utils.SendSuccess(c, "assignment prompt updated", classroom)
}

func (h *ClassroomHandler) addArticle(c *fiber.Ctx) error {
	var payload dto.CustomArticleRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	classroom, err := h.service.AddCustomArticle(c.Context(), c.Params("id"), payload)
	if err != nil {
		return h.classroomUpdateError(c, err, "failed to add custom article")
	}
	return utils.SendSuccess(c, "custom article added", classroom)
}

func (h *ClassroomHandler) removeArticle(c *fiber.Ctx) error {
	payload := dto.CustomArticleRequest{ArticleID: c.Params("articleId")}

	classroom, err := h.service.RemoveCustomArticle(c.Context(), c.Params("id"), payload)
	if err != nil {
		return h.classroomUpdateError(c, err, "failed to remove custom article")
	}
	return utils.SendSuccess(c, "custom article removed", classroom)
}

func (h *ClassroomHandler) classroomUpdateError(c *fiber.Ctx, err error, message string) error {
	switch {
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrClassroomNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "classroom not found")
	}
	requestLogger(h.logger, c).Error().Err(err).Msg(message)
	return utils.SendError(c, fiber.StatusInternalServerError, message)
}
