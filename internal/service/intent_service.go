package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/marccnfs/or4/internal/models"
	"github.com/marccnfs/or4/internal/repository"
)

// FallbackResponse is returned when no canned response exists for the
// resolved intent.
const FallbackResponse = "Je ne suis pas sûr de comprendre votre demande."

// IntentService resolves keywords to an intent through the trigger catalog
// and maps intents to canned responses. Unresolved questions are recorded in
// the corpus for later labeling.
type IntentService struct {
	catalogRepo *repository.CatalogRepository
	corpusRepo  *repository.CorpusRepository
	logger      *zap.Logger
}

func NewIntentService(
	catalogRepo *repository.CatalogRepository,
	corpusRepo *repository.CorpusRepository,
	logger *zap.Logger,
) *IntentService {
	return &IntentService{
		catalogRepo: catalogRepo,
		corpusRepo:  corpusRepo,
		logger:      logger,
	}
}

// Resolve returns the first intent, in catalog declaration order, whose
// trigger set matches any of the keywords. No keywords or no match resolve
// to unknown.
func (s *IntentService) Resolve(keywords []string) string {
	if len(keywords) == 0 {
		return models.IntentUnknown
	}
	catalog := s.catalogRepo.Catalog()
	for _, intent := range catalog.Intents {
		for _, keyword := range keywords {
			if intent.Triggers.Matches(keyword) {
				return intent.Name
			}
		}
	}
	return models.IntentUnknown
}

// Response returns the canned response for an intent, or the fallback when
// none is configured.
func (s *IntentService) Response(intent string) string {
	if response, ok := s.catalogRepo.Catalog().Response(intent); ok {
		return response
	}
	return FallbackResponse
}

// RecordUnknown appends an unresolved question to the corpus so it can be
// labeled by hand and picked up at the next training run.
func (s *IntentService) RecordUnknown(text string) error {
	err := s.corpusRepo.Append(models.CorpusEntry{
		Text:   text,
		Intent: models.IntentUnknown,
	})
	if err != nil {
		return fmt.Errorf("record unknown question: %w", err)
	}
	s.logger.Info("unresolved question recorded", zap.String("text", text))
	return nil
}

// Relabel sets the intent of an existing corpus question.
func (s *IntentService) Relabel(text, intent string) error {
	err := s.corpusRepo.UpdateIntent(text, intent)
	if errors.Is(err, repository.ErrEntryNotFound) {
		return fmt.Errorf("%w: question %q", ErrNotFound, text)
	}
	return err
}
