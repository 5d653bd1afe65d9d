package interfaces

import "context"

// ExtractionCache stores extracted document text across runs so unchanged
// files skip re-extraction. Keys encode the file identity (path, size,
// mtime); a changed file simply produces a new key.
type ExtractionCache interface {
	// Get returns the cached text for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool)

	// Put stores text under key.
	Put(ctx context.Context, key string, text string) error
}
