package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/marccnfs/or4/internal/models"
	"github.com/marccnfs/or4/pkg/jsonfile"
)

// CatalogRepository holds the intent catalog (trigger sets plus canned
// responses). Reload parses the file into a fresh snapshot and publishes it
// atomically, so in-flight requests keep the catalog they started with.
type CatalogRepository struct {
	path   string
	logger *zap.Logger

	snapshot atomic.Pointer[models.Catalog]
}

func NewCatalogRepository(path string, logger *zap.Logger) (*CatalogRepository, error) {
	r := &CatalogRepository{path: path, logger: logger}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Catalog returns the current snapshot. Callers must not mutate it.
func (r *CatalogRepository) Catalog() *models.Catalog {
	return r.snapshot.Load()
}

// Reload re-reads the catalog file and swaps in the parsed result. A parse
// failure leaves the previous snapshot in place.
func (r *CatalogRepository) Reload() error {
	raw, found, err := jsonfile.ReadRaw(r.path)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", r.path, err)
	}
	if !found {
		r.logger.Warn("catalog file missing, starting empty", zap.String("path", r.path))
		r.snapshot.Store(&models.Catalog{Responses: map[string]string{}})
		return nil
	}

	catalog, err := parseCatalog(raw)
	if err != nil {
		return fmt.Errorf("%w: catalog %s: %v", ErrMalformed, r.path, err)
	}
	r.snapshot.Store(catalog)
	r.logger.Info("catalog loaded",
		zap.Int("intents", len(catalog.Intents)),
		zap.Int("responses", len(catalog.Responses)))
	return nil
}

// parseCatalog decodes the document while preserving the order in which
// intents are declared. encoding/json maps are unordered, so the intents
// object is walked with a token decoder instead.
func parseCatalog(raw []byte) (*models.Catalog, error) {
	var doc struct {
		Intents   json.RawMessage   `json:"intents"`
		Responses map[string]string `json:"responses"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	catalog := &models.Catalog{Responses: doc.Responses}
	if catalog.Responses == nil {
		catalog.Responses = map[string]string{}
	}
	if len(doc.Intents) == 0 {
		return catalog, nil
	}

	dec := json.NewDecoder(bytes.NewReader(doc.Intents))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("intents must be an object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected intent key %v", keyTok)
		}
		var triggers models.TriggerSet
		if err := dec.Decode(&triggers); err != nil {
			return nil, fmt.Errorf("intent %q: %w", name, err)
		}
		catalog.Intents = append(catalog.Intents, models.CatalogIntent{
			Name:     name,
			Triggers: triggers,
		})
	}
	return catalog, nil
}
