package repository

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/marccnfs/or4/pkg/jsonfile"
)

// InsightsRepository exposes the precomputed cluster and statistics
// documents produced offline. Both are served verbatim.
type InsightsRepository struct {
	clustersPath   string
	statisticsPath string
	logger         *zap.Logger
}

func NewInsightsRepository(clustersPath, statisticsPath string, logger *zap.Logger) *InsightsRepository {
	return &InsightsRepository{
		clustersPath:   clustersPath,
		statisticsPath: statisticsPath,
		logger:         logger,
	}
}

func (r *InsightsRepository) Clusters() (json.RawMessage, bool, error) {
	return r.readDocument(r.clustersPath)
}

func (r *InsightsRepository) Statistics() (json.RawMessage, bool, error) {
	return r.readDocument(r.statisticsPath)
}

func (r *InsightsRepository) readDocument(path string) (json.RawMessage, bool, error) {
	raw, found, err := jsonfile.ReadRaw(path)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	if !json.Valid(raw) {
		return nil, false, fmt.Errorf("%w: %s", ErrMalformed, path)
	}
	return raw, true, nil
}
