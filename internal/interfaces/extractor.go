package interfaces

import "context"

// TextExtractor extracts plain text from a document file on disk.
type TextExtractor interface {
	// ExtractFile returns the text content of the file at path. An error
	// means the file could not be read or parsed; callers decide whether
	// that is fatal.
	ExtractFile(ctx context.Context, path string) (string, error)
}
