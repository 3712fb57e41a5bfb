package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/marccnfs/or4/internal/dto"
	"github.com/marccnfs/or4/internal/models"
	"github.com/marccnfs/or4/internal/repository"
)

// Intent resolution strategies.
const (
	StrategyDictionary = "dictionary"
	StrategyClassifier = "classifier"
)

// AnalysisService orchestrates the full understanding pipeline: keyword
// extraction, intent resolution, entity extraction and response selection.
type AnalysisService struct {
	keywords   *KeywordService
	intents    *IntentService
	classifier *ClassifierService
	annotator  Annotator
	corpusRepo *repository.CorpusRepository
	strategy   string
	logger     *zap.Logger
}

func NewAnalysisService(
	keywords *KeywordService,
	intents *IntentService,
	classifier *ClassifierService,
	annotator Annotator,
	corpusRepo *repository.CorpusRepository,
	strategy string,
	logger *zap.Logger,
) *AnalysisService {
	if strategy != StrategyClassifier {
		strategy = StrategyDictionary
	}
	return &AnalysisService{
		keywords:   keywords,
		intents:    intents,
		classifier: classifier,
		annotator:  annotator,
		corpusRepo: corpusRepo,
		strategy:   strategy,
		logger:     logger,
	}
}

// Analyze runs the pipeline over a message and assembles the full response.
func (s *AnalysisService) Analyze(ctx context.Context, message string) (*dto.AnalyzeResponse, error) {
	if strings.TrimSpace(message) == "" {
		return emptyAnalysis("Message vide."), nil
	}

	corpus := s.corpusRepo.Texts()
	keywords, err := s.keywords.Extract(ctx, message, corpus)
	if err != nil {
		return nil, err
	}
	if len(keywords) == 0 {
		return emptyAnalysis("Aucun mot-clé détecté."), nil
	}

	annotation, err := s.annotator.Annotate(ctx, message)
	if err != nil {
		return nil, err
	}
	entities := annotation.Entities
	if entities == nil {
		entities = []models.Entity{}
	}

	intent := s.resolveIntent(message, keywords)
	if intent == models.IntentUnknown && s.strategy == StrategyDictionary {
		if err := s.intents.RecordUnknown(message); err != nil {
			// The analysis still stands, only the feedback loop misses out.
			s.logger.Error("failed to record unresolved question", zap.Error(err))
		}
	}

	response := s.intents.Response(intent)
	explanation := "Mots-clés détectés : " + strings.Join(keywords, ", ") +
		". Intention identifiée : " + intent + "."

	s.logger.Info("message analyzed",
		zap.Strings("keywords", keywords),
		zap.String("intent", intent),
		zap.Int("entities", len(entities)))

	return &dto.AnalyzeResponse{
		Response:    response,
		Keywords:    keywords,
		Intent:      intent,
		Context:     intent,
		Entities:    entities,
		Explanation: explanation,
	}, nil
}

// resolveIntent applies the configured strategy. The classifier strategy
// falls back to the dictionary until a model has been trained.
func (s *AnalysisService) resolveIntent(message string, keywords []string) string {
	if s.strategy == StrategyClassifier && s.classifier.Trained() {
		intent, err := s.classifier.Predict(message)
		if err == nil {
			return intent
		}
		s.logger.Warn("classifier prediction failed, using dictionary", zap.Error(err))
	}
	return s.intents.Resolve(keywords)
}

func emptyAnalysis(response string) *dto.AnalyzeResponse {
	return &dto.AnalyzeResponse{
		Response:    response,
		Keywords:    []string{},
		Intent:      models.IntentUnknown,
		Context:     models.IntentUnknown,
		Entities:    []models.Entity{},
		Explanation: "Aucune analyse contextuelle n'a pu être effectuée.",
	}
}
