package corpus

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/reperio/internal/models"
)

// LoadFAQ reads the FAQ map file: a JSON object of string document ids to
// pre-extracted text snippets, bypassing PDF extraction. String values are
// used verbatim; structured values are re-encoded as compact JSON so they
// still tokenize. A missing or malformed file yields an empty corpus.
func LoadFAQ(path string, logger arbor.ILogger) models.Corpus {
	result := make(models.Corpus)

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("FAQ map not readable, returning empty corpus")
		return result
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("FAQ map not parseable, returning empty corpus")
		return result
	}

	for key, value := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			logger.Debug().Str("key", key).Msg("Skipping FAQ entry with non-numeric id")
			continue
		}

		var text string
		if err := json.Unmarshal(value, &text); err != nil {
			// Not a plain string: keep the compact JSON encoding as the
			// document body.
			text = string(value)
		}
		result[id] = text
	}

	logger.Info().
		Str("path", path).
		Int("documents", len(result)).
		Msg("FAQ corpus loaded")

	return result
}
