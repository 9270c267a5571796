package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/service"
	"github.com/thebeat-edu/beat-go-api/internal/utils"
)

// DemoHandler handles demo lifecycle endpoints.
type DemoHandler struct {
	service service.DemoService
	logger  zerolog.Logger
}

// NewDemoHandler constructs the handler.
func NewDemoHandler(service service.DemoService, logger zerolog.Logger) *DemoHandler {
	return &DemoHandler{
		service: service,
		logger:  logger.With().Str("component", "demo_handler").Logger(),
	}
}

// Register wires demo routes.
func (h *DemoHandler) Register(router fiber.Router) {
	router.Get("", h.state)
	router.Put("/mode", h.setMode)
	router.Put("/view-role", h.setViewRole)
}

func (h *DemoHandler) state(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "demo state retrieved", h.service.State(c.Context()))
}

func (h *DemoHandler) setMode(c *fiber.Ctx) error {
	var payload dto.DemoModeRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	state, err := h.service.SetMode(c.Context(), payload)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccess(c, "demo mode updated", state)
}

func (h *DemoHandler) setViewRole(c *fiber.Ctx) error {
	var payload dto.ViewRoleRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	state, err := h.service.SetViewRole(c.Context(), payload)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccess(c, "view role updated", state)
}
