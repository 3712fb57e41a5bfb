package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCatalogPreservesDeclarationOrder(t *testing.T) {
	path := writeCatalogFile(t, `{
        "intents": {
            "zebre": ["z"],
            "abeille": ["a"],
            "milieu": {"direct": ["m"]}
        },
        "responses": {}
    }`)
	repo, err := NewCatalogRepository(path, zap.NewNop())
	require.NoError(t, err)

	catalog := repo.Catalog()
	require.Len(t, catalog.Intents, 3)
	assert.Equal(t, "zebre", catalog.Intents[0].Name)
	assert.Equal(t, "abeille", catalog.Intents[1].Name)
	assert.Equal(t, "milieu", catalog.Intents[2].Name)
}

func TestCatalogTriggersAndResponses(t *testing.T) {
	path := writeCatalogFile(t, `{
        "intents": {
            "horaires": ["horaire", "ouverture"],
            "contact": {"direct": ["contacter"]}
        },
        "responses": {
            "horaires": "Nous sommes ouverts de 9h à 18h."
        }
    }`)
	repo, err := NewCatalogRepository(path, zap.NewNop())
	require.NoError(t, err)

	catalog := repo.Catalog()
	assert.True(t, catalog.Intents[0].Triggers.Matches("ouverture"))
	assert.False(t, catalog.Intents[0].Triggers.Matches("contacter"))
	assert.True(t, catalog.Intents[1].Triggers.Matches("contacter"))

	resp, ok := catalog.Response("horaires")
	require.True(t, ok)
	assert.Equal(t, "Nous sommes ouverts de 9h à 18h.", resp)
	_, ok = catalog.Response("contact")
	assert.False(t, ok)
}

func TestCatalogMalformedTriggers(t *testing.T) {
	path := writeCatalogFile(t, `{
        "intents": {"horaires": 42},
        "responses": {}
    }`)
	_, err := NewCatalogRepository(path, zap.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestCatalogMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	repo, err := NewCatalogRepository(path, zap.NewNop())
	require.NoError(t, err)

	catalog := repo.Catalog()
	assert.Empty(t, catalog.Intents)
	assert.NotNil(t, catalog.Responses)
}

func TestCatalogReloadKeepsSnapshotOnFailure(t *testing.T) {
	path := writeCatalogFile(t, `{
        "intents": {"horaires": ["horaire"]},
        "responses": {}
    }`)
	repo, err := NewCatalogRepository(path, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"intents": "broken"}`), 0644))
	require.Error(t, repo.Reload())

	// The previous snapshot is still being served.
	catalog := repo.Catalog()
	require.Len(t, catalog.Intents, 1)
	assert.Equal(t, "horaires", catalog.Intents[0].Name)
}

func TestCatalogReloadPicksUpChanges(t *testing.T) {
	path := writeCatalogFile(t, `{
        "intents": {"horaires": ["horaire"]},
        "responses": {}
    }`)
	repo, err := NewCatalogRepository(path, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{
        "intents": {"horaires": ["horaire"], "contact": ["contacter"]},
        "responses": {}
    }`), 0644))
	require.NoError(t, repo.Reload())
	assert.Len(t, repo.Catalog().Intents, 2)
}
