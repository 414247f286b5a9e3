package dataset

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"chefguide/internal/config"
	"chefguide/internal/logger"
	"chefguide/internal/models"
	"chefguide/internal/normalizer"
)

// ErrNotLoaded is returned when the store has no snapshot yet.
var ErrNotLoaded = errors.New("dataset not loaded")

// Store holds the current directory snapshot. Readers never block: a reload builds a
// complete new snapshot and swaps it in atomically, so a reader sees either the old
// or the new directory, never a mix.
type Store struct {
	cfg       config.DatasetConfig
	loader    *Loader
	processor *normalizer.Processor
	log       *logger.Logger

	reloadMu sync.Mutex
	current  atomic.Pointer[models.Directory]
}

// NewStore creates an empty store. Call Reload to load the first snapshot.
func NewStore(cfg config.DatasetConfig, log *logger.Logger) *Store {
	return &Store{
		cfg:       cfg,
		loader:    NewLoader(cfg),
		processor: normalizer.NewProcessor(),
		log:       log.With("component", "dataset"),
	}
}

// Current returns the latest snapshot, or nil before the first successful load.
func (s *Store) Current() *models.Directory {
	return s.current.Load()
}

// MustCurrent returns the latest snapshot or ErrNotLoaded.
func (s *Store) MustCurrent() (*models.Directory, error) {
	dir := s.current.Load()
	if dir == nil {
		return nil, ErrNotLoaded
	}

	return dir, nil
}

// Reload reads, validates and normalizes the dataset and swaps it in. On any failure
// the previous snapshot stays in place.
func (s *Store) Reload(ctx context.Context) (*models.Directory, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	ds, source, err := s.loader.Load(ctx, s.cfg)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	dir, err := s.processor.Process(ds, source)
	if err != nil {
		for _, issue := range s.processor.Validator().Issues(ds) {
			s.log.Warn("dataset issue", "source", source, "error", issue)
		}

		return nil, fmt.Errorf("process dataset %s: %w", source, err)
	}

	prev := s.current.Swap(dir)

	if prev != nil && prev.Fingerprint == dir.Fingerprint {
		s.log.Debug("dataset unchanged", "source", source, "fingerprint", dir.Fingerprint)
	} else {
		s.log.Info("dataset loaded",
			"source", source,
			"fingerprint", dir.Fingerprint,
			"chefs", dir.Stats.TotalChefs,
			"restaurants", dir.Stats.TotalRestaurants,
		)
	}

	return dir, nil
}
