package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/marccnfs/or4/internal/repository"
)

// GlossaryService answers definition lookups. Terms match by exact string,
// including case and accents.
type GlossaryService struct {
	repo   *repository.GlossaryRepository
	logger *zap.Logger
}

func NewGlossaryService(repo *repository.GlossaryRepository, logger *zap.Logger) *GlossaryService {
	return &GlossaryService{repo: repo, logger: logger}
}

func (s *GlossaryService) Lookup(term string) (string, error) {
	if strings.TrimSpace(term) == "" {
		return "", ErrMissingInput
	}
	definition, ok, err := s.repo.Definition(term)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: term %q", ErrNotFound, term)
	}
	return definition, nil
}
