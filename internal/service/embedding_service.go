package service

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"

	"github.com/marccnfs/or4/pkg/config"
)

// EmbeddingService produces dense vectors through a local Ollama instance.
type EmbeddingService struct {
	llm    *ollama.LLM
	logger *zap.Logger
}

func NewEmbeddingService(cfg config.EmbeddingConfig, logger *zap.Logger) (*EmbeddingService, error) {
	llm, err := ollama.New(
		ollama.WithModel(cfg.Model),
		ollama.WithServerURL(cfg.BaseURL),
	)
	if err != nil {
		return nil, fmt.Errorf("init embedding backend: %w", err)
	}
	return &EmbeddingService{llm: llm, logger: logger}, nil
}

func (s *EmbeddingService) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	vectors, err := s.llm.CreateEmbedding(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("create embeddings: %w", err)
	}
	return vectors, nil
}
