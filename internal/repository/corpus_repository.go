package repository

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/marccnfs/or4/internal/models"
	"github.com/marccnfs/or4/pkg/jsonfile"
)

// CorpusRepository stores the labeled question corpus as a JSON array on
// disk. Reads take a shared lock; Append and UpdateIntent serialize through
// an exclusive lock and persist before returning, so concurrent writers
// cannot lose entries.
type CorpusRepository struct {
	path   string
	logger *zap.Logger

	mu      sync.RWMutex
	entries []models.CorpusEntry
}

func NewCorpusRepository(path string, logger *zap.Logger) (*CorpusRepository, error) {
	r := &CorpusRepository{path: path, logger: logger}

	var entries []models.CorpusEntry
	found, err := jsonfile.Read(path, &entries)
	if err != nil {
		return nil, fmt.Errorf("%w: corpus %s: %v", ErrMalformed, path, err)
	}
	if !found {
		logger.Warn("corpus file missing, starting empty", zap.String("path", path))
		entries = []models.CorpusEntry{}
	}
	for i, e := range entries {
		if strings.TrimSpace(e.Text) == "" || strings.TrimSpace(e.Intent) == "" {
			return nil, fmt.Errorf("%w: corpus %s: entry %d lacks text or intent", ErrMalformed, path, i)
		}
	}
	r.entries = entries
	return r, nil
}

// Texts returns every question text in declaration order.
func (r *CorpusRepository) Texts() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	texts := make([]string, len(r.entries))
	for i, e := range r.entries {
		texts[i] = e.Text
	}
	return texts
}

// Pairs returns a copy of all entries, including those labeled unknown.
func (r *CorpusRepository) Pairs() []models.CorpusEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pairs := make([]models.CorpusEntry, len(r.entries))
	copy(pairs, r.entries)
	return pairs
}

// Unknown returns the entries still awaiting a manual label.
func (r *CorpusRepository) Unknown() []models.CorpusEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.CorpusEntry
	for _, e := range r.entries {
		if e.Intent == models.IntentUnknown {
			out = append(out, e)
		}
	}
	return out
}

// Append adds an entry and persists the whole corpus. The in-memory state
// only changes once the write to disk succeeded.
func (r *CorpusRepository) Append(entry models.CorpusEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]models.CorpusEntry, len(r.entries), len(r.entries)+1)
	copy(next, r.entries)
	next = append(next, entry)

	if err := jsonfile.Write(r.path, next); err != nil {
		return fmt.Errorf("persist corpus: %w", err)
	}
	r.entries = next
	return nil
}

// UpdateIntent relabels the first entry whose text matches exactly.
func (r *CorpusRepository) UpdateIntent(text, intent string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, e := range r.entries {
		if e.Text == text {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrEntryNotFound
	}

	next := make([]models.CorpusEntry, len(r.entries))
	copy(next, r.entries)
	next[idx].Intent = intent

	if err := jsonfile.Write(r.path, next); err != nil {
		return fmt.Errorf("persist corpus: %w", err)
	}
	r.entries = next
	return nil
}
