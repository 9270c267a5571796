package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/service"
	"github.com/thebeat-edu/beat-go-api/internal/utils"
)

// SessionHandler handles the ambient identity endpoints.
type SessionHandler struct {
	service service.SessionService
	logger  zerolog.Logger
}

// NewSessionHandler constructs the handler.
func NewSessionHandler(service service.SessionService, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		logger:  logger.With().Str("component", "session_handler").Logger(),
	}
}

// Register wires session routes.
func (h *SessionHandler) Register(router fiber.Router) {
	router.Get("", h.current)
	router.Put("", h.set)
	router.Delete("", h.clear)
}

func (h *SessionHandler) current(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "session retrieved", h.service.Current(c.Context()))
}

func (h *SessionHandler) set(c *fiber.Ctx) error {
	var payload dto.SessionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	session, err := h.service.Set(c.Context(), payload)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccess(c, "session updated", session)
}

func (h *SessionHandler) clear(c *fiber.Ctx) error {
	h.service.Clear(c.Context())
	return utils.SendSuccess(c, "session cleared", nil)
}
