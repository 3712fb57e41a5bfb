package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/marccnfs/or4/internal/dto"
	"github.com/marccnfs/or4/internal/service"
)

type AnalysisHandler struct {
	analysisService *service.AnalysisService
	keywordService  *service.KeywordService
	graphService    *service.GraphService
	logger          *zap.Logger
}

func NewAnalysisHandler(
	analysisService *service.AnalysisService,
	keywordService *service.KeywordService,
	graphService *service.GraphService,
	logger *zap.Logger,
) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		keywordService:  keywordService,
		graphService:    graphService,
		logger:          logger,
	}
}

// AnalyzeContext godoc
// @Summary Analyze a user message
// @Description Run the full pipeline: keywords, intent, entities and response
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Message to analyze"
// @Success 200 {object} dto.AnalyzeResponse
// @Failure 400 {object} map[string]string
// @Router /analyze_context [post]
func (h *AnalysisHandler) AnalyzeContext(c *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Requête invalide.",
		})
	}

	resp, err := h.analysisService.Analyze(c.Context(), req.Message)
	if err != nil {
		h.logger.Error("analysis failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "L'analyse a échoué.",
		})
	}
	return c.JSON(resp)
}

// ExtractKeywords godoc
// @Summary Extract raw keywords from a text
// @Description Return the content-bearing tokens with lemma and POS tag
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body dto.ExtractKeywordsRequest true "Text to process"
// @Success 200 {object} dto.ExtractKeywordsResponse
// @Failure 400 {object} map[string]string
// @Router /extract_keywords [post]
func (h *AnalysisHandler) ExtractKeywords(c *fiber.Ctx) error {
	var req dto.ExtractKeywordsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Requête invalide.",
		})
	}
	if strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Aucun texte fourni.",
		})
	}

	tokens, err := h.keywordService.SurfaceKeywords(c.Context(), req.Text)
	if err != nil {
		h.logger.Error("keyword extraction failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "L'extraction des mots-clés a échoué.",
		})
	}

	keywords := make([]dto.ExtractedKeyword, 0, len(tokens))
	for _, tok := range tokens {
		keywords = append(keywords, dto.ExtractedKeyword{
			Keyword: tok.Text,
			Lemma:   tok.Lemma,
			POS:     tok.POS,
		})
	}
	return c.JSON(dto.ExtractKeywordsResponse{Keywords: keywords})
}

// CalculateRelationships godoc
// @Summary Build the keyword relationship graph
// @Description Score keyword pairs by embedding similarity and keep edges above the median
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body dto.RelationshipsRequest true "Keywords to relate"
// @Success 200 {object} dto.RelationshipsResponse
// @Failure 400 {object} map[string]string
// @Router /calculate_relationships [post]
func (h *AnalysisHandler) CalculateRelationships(c *fiber.Ctx) error {
	var req dto.RelationshipsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Requête invalide.",
		})
	}

	relationships, err := h.graphService.Relationships(c.Context(), req.Keywords)
	if err != nil {
		h.logger.Error("relationship computation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Le calcul des relations a échoué.",
		})
	}
	return c.JSON(dto.RelationshipsResponse{Relationships: relationships})
}
