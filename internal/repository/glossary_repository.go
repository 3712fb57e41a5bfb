package repository

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/marccnfs/or4/pkg/jsonfile"
)

// GlossaryRepository serves term definitions from a JSON object mapping
// terms to definition strings. The file is re-read on every lookup so edits
// take effect without a restart.
type GlossaryRepository struct {
	path   string
	logger *zap.Logger
}

func NewGlossaryRepository(path string, logger *zap.Logger) *GlossaryRepository {
	return &GlossaryRepository{path: path, logger: logger}
}

// Definition looks up a term by exact string match.
func (r *GlossaryRepository) Definition(term string) (string, bool, error) {
	var terms map[string]string
	found, err := jsonfile.Read(r.path, &terms)
	if err != nil {
		return "", false, fmt.Errorf("%w: glossary %s: %v", ErrMalformed, r.path, err)
	}
	if !found {
		r.logger.Warn("glossary file missing", zap.String("path", r.path))
		return "", false, nil
	}
	def, ok := terms[term]
	return def, ok, nil
}
