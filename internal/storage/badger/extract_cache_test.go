package badger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/reperio/internal/common"
)

func openTestDB(t *testing.T) *BadgerDB {
	t.Helper()

	db, err := NewBadgerDB(arbor.NewLogger(), &common.CacheConfig{
		Path: filepath.Join(t.TempDir(), "cache"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestExtractionCacheRoundTrip(t *testing.T) {
	cache := NewExtractionCache(openTestDB(t), arbor.NewLogger())
	ctx := context.Background()

	key := "/data/finance/1.pdf|2048|1700000000"
	require.NoError(t, cache.Put(ctx, key, "extracted text body"))

	text, ok := cache.Get(ctx, key)
	assert.True(t, ok)
	assert.Equal(t, "extracted text body", text)
}

func TestExtractionCacheMiss(t *testing.T) {
	cache := NewExtractionCache(openTestDB(t), arbor.NewLogger())

	text, ok := cache.Get(context.Background(), "never-stored")
	assert.False(t, ok)
	assert.Equal(t, "", text)
}

func TestExtractionCacheOverwrite(t *testing.T) {
	cache := NewExtractionCache(openTestDB(t), arbor.NewLogger())
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "key", "first"))
	require.NoError(t, cache.Put(ctx, "key", "second"))

	text, ok := cache.Get(ctx, "key")
	assert.True(t, ok)
	assert.Equal(t, "second", text)
}

func TestResetOnStartup(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	logger := arbor.NewLogger()

	db, err := NewBadgerDB(logger, &common.CacheConfig{Path: dir})
	require.NoError(t, err)
	cache := NewExtractionCache(db, logger)
	require.NoError(t, cache.Put(context.Background(), "key", "value"))
	require.NoError(t, db.Close())

	// Reopen with reset: prior entries are gone.
	db, err = NewBadgerDB(logger, &common.CacheConfig{Path: dir, ResetOnStartup: true})
	require.NoError(t, err)
	defer db.Close()

	cache = NewExtractionCache(db, logger)
	_, ok := cache.Get(context.Background(), "key")
	assert.False(t, ok)
}
