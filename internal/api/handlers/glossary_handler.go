package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/marccnfs/or4/internal/dto"
	"github.com/marccnfs/or4/internal/service"
)

type GlossaryHandler struct {
	glossaryService *service.GlossaryService
	logger          *zap.Logger
}

func NewGlossaryHandler(glossaryService *service.GlossaryService, logger *zap.Logger) *GlossaryHandler {
	return &GlossaryHandler{
		glossaryService: glossaryService,
		logger:          logger,
	}
}

// Lookup godoc
// @Summary Look up a glossary term
// @Description Return the definition of a term by exact match
// @Tags glossary
// @Accept json
// @Produce json
// @Param request body dto.GlossaryRequest true "Term to look up"
// @Success 200 {object} dto.GlossaryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /glossary [post]
func (h *GlossaryHandler) Lookup(c *fiber.Ctx) error {
	var req dto.GlossaryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Requête invalide.",
		})
	}

	definition, err := h.glossaryService.Lookup(req.Term)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Aucun terme fourni.",
			})
		case errors.Is(err, service.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Terme '%s' introuvable dans le glossaire.", req.Term),
			})
		default:
			h.logger.Error("glossary lookup failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "La consultation du glossaire a échoué.",
			})
		}
	}

	return c.JSON(dto.GlossaryResponse{Term: req.Term, Definition: definition})
}
