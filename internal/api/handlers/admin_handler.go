package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/marccnfs/or4/internal/dto"
	"github.com/marccnfs/or4/internal/repository"
	"github.com/marccnfs/or4/internal/service"
)

type AdminHandler struct {
	intentService     *service.IntentService
	classifierService *service.ClassifierService
	catalogRepo       *repository.CatalogRepository
	insightsRepo      *repository.InsightsRepository
	logger            *zap.Logger
}

func NewAdminHandler(
	intentService *service.IntentService,
	classifierService *service.ClassifierService,
	catalogRepo *repository.CatalogRepository,
	insightsRepo *repository.InsightsRepository,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		intentService:     intentService,
		classifierService: classifierService,
		catalogRepo:       catalogRepo,
		insightsRepo:      insightsRepo,
		logger:            logger,
	}
}

// UpdateIntent godoc
// @Summary Relabel a corpus question
// @Description Assign an intent to a question recorded in the corpus
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.UpdateIntentRequest true "Question and intent"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /update-intent [post]
func (h *AdminHandler) UpdateIntent(c *fiber.Ctx) error {
	var req dto.UpdateIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Requête invalide.",
		})
	}
	if strings.TrimSpace(req.Text) == "" || strings.TrimSpace(req.Intent) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Texte ou intention manquante.",
		})
	}

	if err := h.intentService.Relabel(req.Text, req.Intent); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Question introuvable.",
			})
		}
		h.logger.Error("intent update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "La mise à jour de l'intention a échoué.",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Intention mise à jour avec succès."})
}

// Train godoc
// @Summary Start a classifier training run
// @Description Queue a background training job over the corpus
// @Tags admin
// @Produce json
// @Success 202 {object} dto.TrainResponse
// @Router /train [post]
func (h *AdminHandler) Train(c *fiber.Ctx) error {
	job := h.classifierService.StartTraining()
	return c.Status(fiber.StatusAccepted).JSON(dto.TrainResponse{
		JobID:  job.ID.String(),
		Status: string(job.Status),
	})
}

// TrainingJob godoc
// @Summary Get a training job
// @Description Return the status and summary of a training run
// @Tags admin
// @Produce json
// @Param id path string true "Job id"
// @Success 200 {object} dto.TrainingJobResponse
// @Failure 404 {object} map[string]string
// @Router /train/{id} [get]
func (h *AdminHandler) TrainingJob(c *fiber.Ctx) error {
	job, ok := h.classifierService.Job(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Tâche d'entraînement introuvable.",
		})
	}
	return c.JSON(dto.TrainingJobResponse{
		JobID:         job.ID.String(),
		Status:        string(job.Status),
		TrainExamples: job.TrainExamples,
		TestExamples:  job.TestExamples,
		Labels:        job.Labels,
		Accuracy:      job.Accuracy,
		Error:         job.Error,
	})
}

// ReloadData godoc
// @Summary Reload the intent catalog
// @Description Re-read the catalog file and publish it atomically
// @Tags admin
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /reload-data [post]
func (h *AdminHandler) ReloadData(c *fiber.Ctx) error {
	if err := h.catalogRepo.Reload(); err != nil {
		h.logger.Error("catalog reload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Le rechargement des données a échoué.",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Données rechargées avec succès."})
}

// Clusters godoc
// @Summary Get the precomputed question clusters
// @Tags insights
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} map[string]string
// @Router /explore_clusters [get]
func (h *AdminHandler) Clusters(c *fiber.Ctx) error {
	raw, found, err := h.insightsRepo.Clusters()
	if err != nil {
		h.logger.Error("clusters read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "La lecture des clusters a échoué.",
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Clusters introuvables.",
		})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}

// Statistics godoc
// @Summary Get the precomputed corpus statistics
// @Tags insights
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} map[string]string
// @Router /statistics [get]
func (h *AdminHandler) Statistics(c *fiber.Ctx) error {
	raw, found, err := h.insightsRepo.Statistics()
	if err != nil {
		h.logger.Error("statistics read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "La lecture des statistiques a échoué.",
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Statistiques introuvables.",
		})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}
