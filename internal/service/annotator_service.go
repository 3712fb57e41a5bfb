package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/marccnfs/or4/internal/models"
	"github.com/marccnfs/or4/pkg/config"
)

// AnnotatorService calls the linguistic annotation sidecar over HTTP. The
// sidecar owns tokenization, lemmatization, part-of-speech tagging and
// named-entity recognition; this service only moves JSON.
type AnnotatorService struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewAnnotatorService(cfg config.AnnotatorConfig, logger *zap.Logger) *AnnotatorService {
	return &AnnotatorService{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

type annotateRequest struct {
	Text string `json:"text"`
}

func (s *AnnotatorService) Annotate(ctx context.Context, text string) (*models.Annotation, error) {
	body, err := json.Marshal(annotateRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("marshal annotate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/annotate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build annotate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call annotator: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		s.logger.Error("annotator returned non-200",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", payload))
		return nil, fmt.Errorf("annotator status %d", resp.StatusCode)
	}

	var annotation models.Annotation
	if err := json.NewDecoder(resp.Body).Decode(&annotation); err != nil {
		return nil, fmt.Errorf("decode annotator response: %w", err)
	}
	return &annotation, nil
}
