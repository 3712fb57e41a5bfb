package service

import (
	"context"

	"github.com/marccnfs/or4/internal/models"
)

// Annotator produces tokens, lemmas, part-of-speech tags and named entities
// for a piece of text.
type Annotator interface {
	Annotate(ctx context.Context, text string) (*models.Annotation, error)
}

// Embedder turns texts into dense vectors.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
