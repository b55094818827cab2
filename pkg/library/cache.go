package library

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/models"
)

const cacheFile = "library.json"

// SaveCache writes the scanned item collection under the data directory so
// later commands can browse without re-walking the library.
func SaveCache(dataDir string, items []models.Item) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("ensure data dir: %w", err)
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode library cache: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, cacheFile), data, 0644); err != nil {
		return fmt.Errorf("write library cache: %w", err)
	}
	return nil
}

// LoadCache reads the cached item collection. A missing cache returns an
// empty collection, not an error.
func LoadCache(dataDir string) ([]models.Item, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, cacheFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read library cache: %w", err)
	}
	var items []models.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode library cache: %w", err)
	}
	return items, nil
}
