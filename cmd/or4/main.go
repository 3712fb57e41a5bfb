package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/marccnfs/or4/internal/api"
	"github.com/marccnfs/or4/internal/api/handlers"
	"github.com/marccnfs/or4/internal/repository"
	"github.com/marccnfs/or4/internal/service"
	"github.com/marccnfs/or4/pkg/config"
	"github.com/marccnfs/or4/pkg/logger"
	"github.com/marccnfs/or4/pkg/stopwords"
)

// @title OR4 Text Understanding API
// @version 1.0
// @description Service d'analyse contextuelle pour l'assistant FAQ : extraction de mots-clés, résolution d'intention, entités et graphe de relations.

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting text understanding service")

	// Repositories
	corpusRepo, err := repository.NewCorpusRepository(
		filepath.Join(cfg.Data.Dir, cfg.Data.CorpusFile), appLogger)
	if err != nil {
		appLogger.Fatal("Failed to load corpus", zap.Error(err))
	}
	catalogRepo, err := repository.NewCatalogRepository(
		filepath.Join(cfg.Data.Dir, cfg.Data.CatalogFile), appLogger)
	if err != nil {
		appLogger.Fatal("Failed to load catalog", zap.Error(err))
	}
	glossaryRepo := repository.NewGlossaryRepository(
		filepath.Join(cfg.Data.Dir, cfg.Data.GlossaryFile), appLogger)
	insightsRepo := repository.NewInsightsRepository(
		filepath.Join(cfg.Data.Dir, cfg.Data.ClustersFile),
		filepath.Join(cfg.Data.Dir, cfg.Data.StatisticsFile),
		appLogger)

	// Services
	stopPolicy := stopwords.New(cfg.Language.StopwordAdditions, cfg.Language.StopwordRemovals)
	annotatorService := service.NewAnnotatorService(cfg.Annotator, appLogger)
	embeddingService, err := service.NewEmbeddingService(cfg.Embedding, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize embedding service", zap.Error(err))
	}
	keywordService := service.NewKeywordService(
		annotatorService, embeddingService, stopPolicy, cfg.Language, cfg.Keywords, appLogger)
	graphService := service.NewGraphService(embeddingService, cfg.Graph, appLogger)
	intentService := service.NewIntentService(catalogRepo, corpusRepo, appLogger)
	classifierService := service.NewClassifierService(corpusRepo, cfg.Classifier, appLogger)
	glossaryService := service.NewGlossaryService(glossaryRepo, appLogger)
	analysisService := service.NewAnalysisService(
		keywordService, intentService, classifierService, annotatorService,
		corpusRepo, cfg.Classifier.Strategy, appLogger)

	// Handlers
	analysisHandler := handlers.NewAnalysisHandler(analysisService, keywordService, graphService, appLogger)
	glossaryHandler := handlers.NewGlossaryHandler(glossaryService, appLogger)
	adminHandler := handlers.NewAdminHandler(intentService, classifierService, catalogRepo, insightsRepo, appLogger)

	// Router
	app := api.SetupRouter(analysisHandler, glossaryHandler, adminHandler, cfg.Admin.APIKey, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server listening", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown failed", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
