package models

import "sort"

// Document is a single retrievable source: an integer id derived from the
// source filename (or FAQ key) and the extracted text body. Text may be
// empty when extraction failed; such documents are kept in the corpus but
// never win retrieval.
type Document struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Corpus maps document id to extracted text. A corpus is read-only after
// loading and safe for concurrent reads.
type Corpus map[int]string

// IDs returns all document ids in ascending order.
func (c Corpus) IDs() []int {
	ids := make([]int, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Subset returns a new corpus restricted to the given ids. Ids not present
// in the corpus are ignored.
func (c Corpus) Subset(ids []int) Corpus {
	sub := make(Corpus, len(ids))
	for _, id := range ids {
		if text, ok := c[id]; ok {
			sub[id] = text
		}
	}
	return sub
}
