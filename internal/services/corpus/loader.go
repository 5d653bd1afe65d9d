package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/reperio/internal/interfaces"
	"github.com/ternarybob/reperio/internal/models"
	"github.com/ternarybob/reperio/internal/services/workers"
)

// Loader builds a corpus from a directory of PDF files. Extraction runs
// on a bounded worker pool since file reads dominate; each task writes one
// independent id->text pair. A file that cannot be extracted degrades to
// an empty text entry so one bad file never fails the whole load.
type Loader struct {
	extractor  interfaces.TextExtractor
	cache      interfaces.ExtractionCache // nil when caching is disabled
	maxWorkers int
	logger     arbor.ILogger
}

// NewLoader creates a corpus loader. cache may be nil.
func NewLoader(extractor interfaces.TextExtractor, cache interfaces.ExtractionCache, maxWorkers int, logger arbor.ILogger) *Loader {
	return &Loader{
		extractor:  extractor,
		cache:      cache,
		maxWorkers: maxWorkers,
		logger:     logger,
	}
}

// LoadDirectory reads every "<id>.pdf" file under dir into a corpus. A
// missing or unreadable directory yields an empty corpus, not an error.
// Files whose base name is not an integer are skipped.
func (l *Loader) LoadDirectory(ctx context.Context, dir string) models.Corpus {
	result := make(models.Corpus)

	entries, err := os.ReadDir(dir)
	if err != nil {
		l.logger.Warn().Err(err).Str("dir", dir).Msg("Corpus directory not readable, returning empty corpus")
		return result
	}

	var resultMu sync.Mutex

	pool := workers.NewPool(ctx, l.maxWorkers, l.logger)
	pool.Start()

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), ".pdf") {
			continue
		}

		id, err := strconv.Atoi(strings.TrimSuffix(name, filepath.Ext(name)))
		if err != nil {
			l.logger.Debug().Str("file", name).Msg("Skipping PDF with non-numeric name")
			continue
		}

		path := filepath.Join(dir, name)
		if err := pool.Submit(func(taskCtx context.Context) error {
			text, err := l.extract(taskCtx, path)
			if err != nil {
				// Degrade to an empty document; the retriever filters
				// blank texts out of every candidate set.
				l.logger.Warn().Err(err).Str("path", path).Msg("PDF extraction failed, storing empty document")
				text = ""
			}

			resultMu.Lock()
			result[id] = text
			resultMu.Unlock()
			return nil
		}); err != nil {
			l.logger.Warn().Err(err).Str("path", path).Msg("Failed to submit extraction task")
		}
	}

	pool.Wait()

	l.logger.Info().
		Str("dir", dir).
		Int("documents", len(result)).
		Msg("Corpus loaded")

	return result
}

// extract returns the text for path, consulting the cache first when one
// is configured.
func (l *Loader) extract(ctx context.Context, path string) (string, error) {
	key := ""
	if l.cache != nil {
		key = cacheKey(path)
		if key != "" {
			if text, ok := l.cache.Get(ctx, key); ok {
				return text, nil
			}
		}
	}

	text, err := l.extractor.ExtractFile(ctx, path)
	if err != nil {
		return "", err
	}

	if l.cache != nil && key != "" {
		if err := l.cache.Put(ctx, key, text); err != nil {
			l.logger.Warn().Err(err).Str("path", path).Msg("Failed to cache extracted text")
		}
	}

	return text, nil
}

// cacheKey encodes the file identity. A changed file (size or mtime)
// produces a new key, so stale cache entries are simply never read again.
func cacheKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	info, err := os.Stat(path)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s|%d|%d", abs, info.Size(), info.ModTime().UnixNano())
}
