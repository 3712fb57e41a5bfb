package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/marccnfs/or4/internal/models"
	"github.com/marccnfs/or4/pkg/config"
)

// GraphService derives a relationship graph between keywords. Every keyword
// pair is scored with embedding cosine similarity; pairs strictly above a
// dynamic threshold (the median of all pairwise similarities) become edges.
type GraphService struct {
	embedder          Embedder
	fallbackThreshold float64
	logger            *zap.Logger
}

func NewGraphService(embedder Embedder, cfg config.GraphConfig, logger *zap.Logger) *GraphService {
	return &GraphService{
		embedder:          embedder,
		fallbackThreshold: cfg.FallbackThreshold,
		logger:            logger,
	}
}

// Relationships returns the edges of the keyword graph. Fewer than two
// keywords yield an empty graph. Edge weights are rounded to two decimals.
func (s *GraphService) Relationships(ctx context.Context, keywords []string) ([]models.Relationship, error) {
	edges := make([]models.Relationship, 0)
	if len(keywords) < 2 {
		return edges, nil
	}

	vectors, err := s.embedder.Embed(ctx, keywords)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(keywords) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d keywords", len(vectors), len(keywords))
	}

	type pair struct {
		i, j       int
		similarity float64
	}
	var pairs []pair
	similarities := make([]float64, 0, len(keywords)*(len(keywords)-1)/2)
	degenerate := true
	for i := 0; i < len(keywords); i++ {
		for j := i + 1; j < len(keywords); j++ {
			sim := cosineSimilarity(vectors[i], vectors[j])
			if vectorNorm(vectors[i]) > 0 && vectorNorm(vectors[j]) > 0 {
				degenerate = false
			}
			pairs = append(pairs, pair{i: i, j: j, similarity: sim})
			similarities = append(similarities, sim)
		}
	}

	threshold := s.fallbackThreshold
	if !degenerate {
		threshold = median(similarities)
	}

	for _, p := range pairs {
		if p.similarity > threshold {
			edges = append(edges, models.Relationship{
				Source: keywords[p.i],
				Target: keywords[p.j],
				Weight: math.Round(p.similarity*100) / 100,
			})
		}
	}
	s.logger.Debug("relationship graph built",
		zap.Int("keywords", len(keywords)),
		zap.Float64("threshold", threshold),
		zap.Int("edges", len(edges)))
	return edges, nil
}

func vectorNorm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
