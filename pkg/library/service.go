package library

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/browse"
	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/models"
	"github.com/ImTheFrack/Vibe-CBR-Reader-sub001/pkg/progress"
)

// Config holds service configuration.
type Config struct {
	LibraryRoot string
	DataDir     string
	ShowNSFW    bool
	DefaultSort browse.Criterion
}

// Service owns the item supply (scanner + cache) and the progress store, and
// hands out browsing states over them.
type Service struct {
	Config   *Config
	Progress *progress.Store
	Log      *logrus.Logger
}

// New creates the library service and opens the progress store under the
// data directory.
func New(config *Config, log *logrus.Logger) (*Service, error) {
	store, err := progress.NewStore(filepath.Join(config.DataDir, "progress.db"))
	if err != nil {
		return nil, fmt.Errorf("open progress store: %w", err)
	}
	if config.DefaultSort == "" {
		config.DefaultSort = browse.SortAlphaAsc
	}
	return &Service{
		Config:   config,
		Progress: store,
		Log:      log,
	}, nil
}

// Scan walks the library root and refreshes the item cache.
func (s *Service) Scan() ([]models.Item, error) {
	scanner := &Scanner{
		Root:     s.Config.LibraryRoot,
		ShowNSFW: s.Config.ShowNSFW,
		Log:      s.Log,
	}
	items, err := scanner.Scan()
	if err != nil {
		return nil, err
	}
	if err := SaveCache(s.Config.DataDir, items); err != nil {
		// The scan itself succeeded; browsing still works this run.
		s.Log.Warnf("failed to cache library: %v", err)
	}
	return items, nil
}

// Items returns the cached item collection, scanning once when no cache
// exists yet.
func (s *Service) Items() ([]models.Item, error) {
	items, err := LoadCache(s.Config.DataDir)
	if err != nil {
		return nil, err
	}
	if items == nil {
		return s.Scan()
	}
	return items, nil
}

// NewState loads items and progress and builds a browsing state over them.
func (s *Service) NewState() (*State, error) {
	items, err := s.Items()
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	progressMap, err := s.Progress.Load()
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	return NewState(items, s.Config.LibraryRoot, progressMap), nil
}

// Close closes the service.
func (s *Service) Close() error {
	if s.Progress != nil {
		return s.Progress.Close()
	}
	return nil
}
