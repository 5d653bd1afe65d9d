package search

import (
	"math"
	"sort"
)

// BM25 parameters (Okapi variant, standard values).
const (
	paramK1      = 1.5
	paramB       = 0.75
	paramEpsilon = 0.25
)

// IndexedDocument is one tokenized candidate keyed by its document id.
type IndexedDocument struct {
	ID     int
	Tokens []string
}

// Hit is a single ranked result.
type Hit struct {
	ID    int
	Score float64
}

// Index is a BM25 (Okapi) index over a candidate set. It is built per
// query, keeps document ids alongside scores so winners are identified by
// id directly, and is immutable after construction.
type Index struct {
	ids []int

	// termFrequencies[i][term] is the term frequency in document i.
	termFrequencies []map[string]int

	// lengths[i] is the token count of document i.
	lengths []int

	averageLength float64

	// inverseDocumentFrequency[term] is the precomputed IDF per corpus
	// term, floored at epsilon so corpus-wide terms still contribute.
	inverseDocumentFrequency map[string]float64
}

// NewIndex builds a BM25 index over the given tokenized documents.
func NewIndex(documents []IndexedDocument) *Index {
	index := &Index{
		ids:                      make([]int, len(documents)),
		termFrequencies:          make([]map[string]int, len(documents)),
		lengths:                  make([]int, len(documents)),
		inverseDocumentFrequency: make(map[string]float64),
	}

	documentFrequency := make(map[string]int)
	var totalLength int

	for i, document := range documents {
		index.ids[i] = document.ID
		index.lengths[i] = len(document.Tokens)
		totalLength += len(document.Tokens)

		termFrequency := make(map[string]int)
		for _, token := range document.Tokens {
			if termFrequency[token] == 0 {
				documentFrequency[token]++
			}
			termFrequency[token]++
		}
		index.termFrequencies[i] = termFrequency
	}

	if len(documents) > 0 {
		index.averageLength = float64(totalLength) / float64(len(documents))
	}

	documentCount := float64(len(documents))
	for term, frequency := range documentFrequency {
		idf := math.Log(1 + (documentCount-float64(frequency)+0.5)/(float64(frequency)+0.5))
		if idf < paramEpsilon {
			idf = paramEpsilon
		}
		index.inverseDocumentFrequency[term] = idf
	}

	return index
}

// Search ranks all indexed documents against the query tokens and returns
// up to limit hits, best first. Zero-scoring documents are still ranked:
// a candidate set with no term overlap must still produce a winner. Ties
// keep construction order, so duplicate texts resolve deterministically to
// the earlier document.
func (index *Index) Search(queryTokens []string, limit int) []Hit {
	if len(index.ids) == 0 {
		return nil
	}

	hits := make([]Hit, len(index.ids))
	for i, id := range index.ids {
		hits[i] = Hit{ID: id, Score: index.score(i, queryTokens)}
	}

	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Score > hits[b].Score
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

// score computes the BM25 score for one document against the query tokens.
func (index *Index) score(documentIndex int, queryTokens []string) float64 {
	termFrequency := index.termFrequencies[documentIndex]
	documentLength := float64(index.lengths[documentIndex])

	var score float64
	for _, token := range queryTokens {
		idf, exists := index.inverseDocumentFrequency[token]
		if !exists {
			continue
		}

		frequency := float64(termFrequency[token])
		if frequency == 0 {
			continue
		}

		// BM25 term score: IDF * (tf * (k1 + 1)) / (tf + k1 * (1 - b + b * dl/avgdl))
		numerator := frequency * (paramK1 + 1)
		denominator := frequency + paramK1*(1-paramB+paramB*documentLength/index.averageLength)
		score += idf * numerator / denominator
	}

	return score
}
