package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marccnfs/or4/internal/models"
	"github.com/marccnfs/or4/internal/repository"
)

const testCatalog = `{
    "intents": {
        "horaires": ["horaire", "ouverture"],
        "contact": {"direct": ["contacter", "téléphone"]},
        "tarifs": ["tarif", "ouverture"]
    },
    "responses": {
        "horaires": "Nous sommes ouverts de 9h à 18h.",
        "contact": "Vous pouvez nous joindre au 01 23 45 67 89."
    }
}`

func newTestIntentService(t *testing.T) (*IntentService, *repository.CorpusRepository) {
	t.Helper()
	dir := t.TempDir()

	catalogPath := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(testCatalog), 0644))
	catalogRepo, err := repository.NewCatalogRepository(catalogPath, zap.NewNop())
	require.NoError(t, err)

	corpusPath := filepath.Join(dir, "corpus.json")
	require.NoError(t, os.WriteFile(corpusPath,
		[]byte(`[{"text": "Quels sont vos horaires ?", "intent": "horaires"}]`), 0644))
	corpusRepo, err := repository.NewCorpusRepository(corpusPath, zap.NewNop())
	require.NoError(t, err)

	return NewIntentService(catalogRepo, corpusRepo, zap.NewNop()), corpusRepo
}

func TestResolveFirstDeclaredIntentWins(t *testing.T) {
	svc, _ := newTestIntentService(t)

	// "ouverture" triggers both horaires and tarifs; horaires is declared
	// first so it wins.
	assert.Equal(t, "horaires", svc.Resolve([]string{"ouverture"}))
}

func TestResolveStructuredTriggers(t *testing.T) {
	svc, _ := newTestIntentService(t)

	assert.Equal(t, "contact", svc.Resolve([]string{"contacter"}))
	assert.Equal(t, "contact", svc.Resolve([]string{"téléphone"}))
}

func TestResolveNoKeywords(t *testing.T) {
	svc, _ := newTestIntentService(t)

	assert.Equal(t, models.IntentUnknown, svc.Resolve(nil))
	assert.Equal(t, models.IntentUnknown, svc.Resolve([]string{}))
}

func TestResolveNoMatch(t *testing.T) {
	svc, _ := newTestIntentService(t)

	assert.Equal(t, models.IntentUnknown, svc.Resolve([]string{"licorne"}))
}

func TestResponseFallback(t *testing.T) {
	svc, _ := newTestIntentService(t)

	assert.Equal(t, "Nous sommes ouverts de 9h à 18h.", svc.Response("horaires"))
	// tarifs has triggers but no response entry.
	assert.Equal(t, FallbackResponse, svc.Response("tarifs"))
	assert.Equal(t, FallbackResponse, svc.Response(models.IntentUnknown))
}

func TestRecordUnknownAppendsToCorpus(t *testing.T) {
	svc, corpusRepo := newTestIntentService(t)

	require.NoError(t, svc.RecordUnknown("Vendez-vous des licornes ?"))

	unknown := corpusRepo.Unknown()
	require.Len(t, unknown, 1)
	assert.Equal(t, "Vendez-vous des licornes ?", unknown[0].Text)
	assert.Equal(t, models.IntentUnknown, unknown[0].Intent)
}

func TestRelabel(t *testing.T) {
	svc, corpusRepo := newTestIntentService(t)

	require.NoError(t, svc.Relabel("Quels sont vos horaires ?", "contact"))
	pairs := corpusRepo.Pairs()
	require.Len(t, pairs, 1)
	assert.Equal(t, "contact", pairs[0].Intent)

	err := svc.Relabel("Question inconnue", "contact")
	assert.True(t, errors.Is(err, ErrNotFound))
}
