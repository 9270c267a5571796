package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/service"
	"github.com/thebeat-edu/beat-go-api/internal/utils"
)

// ResearchHandler handles highlight and note endpoints. The scope segment of
// the path picks the student or teacher universe.
type ResearchHandler struct {
	service service.ResearchService
	logger  zerolog.Logger
}

// NewResearchHandler constructs the handler.
func NewResearchHandler(service service.ResearchService, logger zerolog.Logger) *ResearchHandler {
	return &ResearchHandler{
		service: service,
		logger:  logger.With().Str("component", "research_handler").Logger(),
	}
}

// Register wires research routes under a :scope parameter.
func (h *ResearchHandler) Register(router fiber.Router) {
	router.Get("/highlights", h.listHighlights)
	router.Post("/highlights", h.addHighlight)
	router.Put("/highlights", h.replaceHighlights)
	router.Delete("/highlights/:id", h.removeHighlight)
	router.Get("/notes", h.listNotes)
	router.Post("/notes", h.addNote)
	router.Put("/notes", h.replaceNotes)
	router.Put("/notes/:id", h.updateNote)
	router.Delete("/notes/:id", h.removeNote)
}

func (h *ResearchHandler) listHighlights(c *fiber.Ctx) error {
	scope := c.Params("scope")
	if articleID := c.Query("articleId"); articleID != "" {
		highlights, err := h.service.HighlightsForArticle(c.Context(), scope, articleID)
		if err != nil {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.SendSuccess(c, "highlights retrieved", highlights)
	}

	highlights, err := h.service.Highlights(c.Context(), scope)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccess(c, "highlights retrieved", highlights)
}

func (h *ResearchHandler) addHighlight(c *fiber.Ctx) error {
	var payload dto.HighlightRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	highlight, err := h.service.AddHighlight(c.Context(), c.Params("scope"), payload)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "highlight saved", highlight)
}

func (h *ResearchHandler) replaceHighlights(c *fiber.Ctx) error {
	var payload dto.HighlightReplaceRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.ReplaceHighlights(c.Context(), c.Params("scope"), payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccess(c, "highlights replaced", nil)
}

func (h *ResearchHandler) removeHighlight(c *fiber.Ctx) error {
	if err := h.service.RemoveHighlight(c.Context(), c.Params("scope"), c.Params("id")); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccess(c, "highlight removed", nil)
}

func (h *ResearchHandler) listNotes(c *fiber.Ctx) error {
	scope := c.Params("scope")
	if articleID := c.Query("articleId"); articleID != "" {
		notes, err := h.service.NotesForArticle(c.Context(), scope, articleID)
		if err != nil {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.SendSuccess(c, "notes retrieved", notes)
	}

	notes, err := h.service.Notes(c.Context(), scope)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccess(c, "notes retrieved", notes)
}

func (h *ResearchHandler) addNote(c *fiber.Ctx) error {
	var payload dto.NoteRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	note, err := h.service.AddNote(c.Context(), c.Params("scope"), payload)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "note saved", note)
}

func (h *ResearchHandler) replaceNotes(c *fiber.Ctx) error {
	var payload dto.NoteReplaceRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.ReplaceNotes(c.Context(), c.Params("scope"), payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccess(c, "notes replaced", nil)
}

func (h *ResearchHandler) updateNote(c *fiber.Ctx) error {
	var payload dto.NoteUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.UpdateNote(c.Context(), c.Params("scope"), c.Params("id"), payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccess(c, "note updated", nil)
}

func (h *ResearchHandler) removeNote(c *fiber.Ctx) error {
	if err := h.service.RemoveNote(c.Context(), c.Params("scope"), c.Params("id")); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.SendSuccess(c, "note removed", nil)
}
