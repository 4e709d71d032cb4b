package settings

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckylamd/flight-search-engine/internal/i18n"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_LanguageDefaultsToEnglish(t *testing.T) {
	store := newTestStore(t)

	lang, err := store.Language(context.Background())

	require.NoError(t, err)
	assert.Equal(t, i18n.DefaultLanguage, lang)
}

func TestStore_SetAndGetLanguage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetLanguage(ctx, "de"))

	lang, err := store.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, "de", lang)
}

func TestStore_SetLanguageOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetLanguage(ctx, "de"))
	require.NoError(t, store.SetLanguage(ctx, "es"))

	lang, err := store.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, "es", lang)
}

func TestStore_SetLanguageRejectsUnsupported(t *testing.T) {
	store := newTestStore(t)

	err := store.SetLanguage(context.Background(), "fr")

	assert.Error(t, err)
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.SetLanguage(ctx, "es"))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	lang, err := reopened.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, "es", lang)
}
