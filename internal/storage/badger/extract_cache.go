package badger

import (
	"context"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/reperio/internal/interfaces"
	"github.com/timshannon/badgerhold/v4"
)

// ExtractionRecord is one cached extraction result. The key encodes the
// file identity (absolute path, size, mtime), so a modified file misses
// the cache and gets re-extracted under a new key.
type ExtractionRecord struct {
	Key      string `badgerhold:"key"`
	Text     string
	CachedAt time.Time
}

// ExtractionCache implements the ExtractionCache interface for Badger
type ExtractionCache struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// Compile-time interface assertion
var _ interfaces.ExtractionCache = (*ExtractionCache)(nil)

// NewExtractionCache creates an extraction cache backed by db
func NewExtractionCache(db *BadgerDB, logger arbor.ILogger) *ExtractionCache {
	return &ExtractionCache{
		db:     db,
		logger: logger,
	}
}

// Get retrieves cached text by key
func (c *ExtractionCache) Get(ctx context.Context, key string) (string, bool) {
	var record ExtractionRecord
	err := c.db.Store().Get(key, &record)
	if err == badgerhold.ErrNotFound {
		return "", false
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Extraction cache read failed")
		return "", false
	}
	return record.Text, true
}

// Put stores extracted text under key
func (c *ExtractionCache) Put(ctx context.Context, key string, text string) error {
	record := ExtractionRecord{
		Key:      key,
		Text:     text,
		CachedAt: time.Now(),
	}
	return c.db.Store().Upsert(key, &record)
}
