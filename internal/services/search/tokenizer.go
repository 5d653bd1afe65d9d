package search

import (
	"fmt"
	"strings"

	"github.com/go-ego/gse"
)

// Segmenter tokenizes text for BM25 scoring using gse in search mode.
// Search mode over-segments long compounds into their shorter words as
// well, which raises term overlap between queries and documents — the
// behavior recall-oriented retrieval wants. The dictionary is loaded once
// at construction; Cut is safe for concurrent use afterwards.
type Segmenter struct {
	seg gse.Segmenter
}

// NewSegmenter creates a segmenter with the default dictionary loaded.
func NewSegmenter() (*Segmenter, error) {
	s := &Segmenter{}
	if err := s.seg.LoadDict(); err != nil {
		return nil, fmt.Errorf("failed to load segmenter dictionary: %w", err)
	}
	return s, nil
}

// Cut segments text into search-mode tokens, dropping whitespace-only
// tokens.
func (s *Segmenter) Cut(text string) []string {
	raw := s.seg.CutSearch(text, true)

	tokens := make([]string, 0, len(raw))
	for _, token := range raw {
		if strings.TrimSpace(token) == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
