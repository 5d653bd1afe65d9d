package app

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/reperio/internal/common"
	"github.com/ternarybob/reperio/internal/interfaces"
	"github.com/ternarybob/reperio/internal/services/corpus"
	"github.com/ternarybob/reperio/internal/services/pdf"
	"github.com/ternarybob/reperio/internal/services/search"
	"github.com/ternarybob/reperio/internal/storage/badger"
)

// App wires the retrieval pipeline: corpus loader, segmenter, retriever
// and the optional extraction cache.
type App struct {
	config    *common.Config
	logger    arbor.ILogger
	db        *badger.BadgerDB // nil when caching is disabled
	loader    *corpus.Loader
	retriever *search.Retriever
}

// New builds the application from configuration. Fails only on startup
// errors: an unloadable segmenter dictionary or an unopenable cache
// database.
func New(config *common.Config, logger arbor.ILogger) (*App, error) {
	segmenter, err := search.NewSegmenter()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize segmenter: %w", err)
	}

	var db *badger.BadgerDB
	var cache interfaces.ExtractionCache
	if config.Cache.Enabled {
		db, err = badger.NewBadgerDB(logger, &config.Cache)
		if err != nil {
			return nil, fmt.Errorf("failed to open extraction cache: %w", err)
		}
		cache = badger.NewExtractionCache(db, logger)
		logger.Info().Str("path", config.Cache.Path).Msg("Extraction cache enabled")
	}

	extractor := pdf.NewExtractor(logger)
	loader := corpus.NewLoader(extractor, cache, config.Loader.Workers, logger)
	retriever := search.NewRetriever(segmenter, logger)

	return &App{
		config:    config,
		logger:    logger,
		db:        db,
		loader:    loader,
		retriever: retriever,
	}, nil
}

// Close releases application resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
