package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/models"
)

func TestCacheRoundTrip(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")
	vol := 1.0
	items := []models.Item{
		{ID: "a", Path: "/lib/Action/Naruto v1.cbz", Series: "Naruto", Volume: &vol, Genres: []string{"Action"}},
		{ID: "b", Path: "/lib/Drama/Nana.cbz", Series: "Nana", NSFW: true},
	}

	require.NoError(t, SaveCache(dataDir, items))

	loaded, err := LoadCache(dataDir)
	require.NoError(t, err)
	assert.Equal(t, items, loaded)
}

func TestLoadCacheMissing(t *testing.T) {
	items, err := LoadCache(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestLoadCacheCorrupt(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "library.json"), []byte("{not json"), 0644))

	_, err := LoadCache(dataDir)
	assert.Error(t, err)
}
