package search

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/reperio/internal/models"
)

// Retriever scores a restricted candidate set against a query with BM25
// and returns the single best document id. A fresh index is built per
// query — candidate sets are small and nothing persists between runs.
type Retriever struct {
	segmenter *Segmenter
	logger    arbor.ILogger
}

// NewRetriever creates a retriever using the given segmenter.
func NewRetriever(segmenter *Segmenter, logger arbor.ILogger) *Retriever {
	return &Retriever{
		segmenter: segmenter,
		logger:    logger,
	}
}

// Retrieve returns the id of the candidate most relevant to query, and
// false when no candidate has retrievable text. Candidates missing from
// the corpus or with blank text are filtered out first; the returned id is
// always a member of candidates.
func (r *Retriever) Retrieve(query string, candidates []int, corpus models.Corpus) (int, bool) {
	documents := make([]IndexedDocument, 0, len(candidates))
	for _, id := range candidates {
		text, ok := corpus[id]
		if !ok {
			continue
		}
		tokens := r.segmenter.Cut(text)
		if len(tokens) == 0 {
			continue
		}
		documents = append(documents, IndexedDocument{ID: id, Tokens: tokens})
	}

	if len(documents) == 0 {
		r.logger.Warn().Str("query", query).Msg("No valid documents found for query")
		return 0, false
	}

	index := NewIndex(documents)
	hits := index.Search(r.segmenter.Cut(query), 1)
	if len(hits) == 0 {
		return 0, false
	}

	r.logger.Debug().
		Str("query", query).
		Int("candidates", len(documents)).
		Int("retrieved", hits[0].ID).
		Str("score", fmt.Sprintf("%.4f", hits[0].Score)).
		Msg("Retrieved document")

	return hits[0].ID, true
}
