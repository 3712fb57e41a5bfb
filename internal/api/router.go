package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/marccnfs/or4/internal/api/handlers"
	"github.com/marccnfs/or4/pkg/middleware"
)

func SetupRouter(
	analysisHandler *handlers.AnalysisHandler,
	glossaryHandler *handlers.GlossaryHandler,
	adminHandler *handlers.AdminHandler,
	adminAPIKey string,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Analysis routes
	app.Post("/analyze_context", analysisHandler.AnalyzeContext)
	app.Post("/extract_keywords", analysisHandler.ExtractKeywords)
	app.Post("/calculate_relationships", analysisHandler.CalculateRelationships)
	app.Post("/glossary", glossaryHandler.Lookup)

	// Insight routes
	app.Get("/explore_clusters", adminHandler.Clusters)
	app.Get("/statistics", adminHandler.Statistics)

	// Admin routes
	app.Post("/update-intent", adminHandler.UpdateIntent)
	app.Post("/train", adminHandler.Train)
	app.Get("/train/:id", adminHandler.TrainingJob)
	app.Post("/reload-data", middleware.APIKeyMiddleware(adminAPIKey, appLogger), adminHandler.ReloadData)

	return app
}
