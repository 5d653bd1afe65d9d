// -----------------------------------------------------------------------
// PDF Extractor Service - Extract text content from PDF documents
// Uses pdfcpu for Go-native PDF processing
// -----------------------------------------------------------------------

package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/reperio/internal/interfaces"
)

// pagePattern pulls the page number out of extracted content filenames.
// pdfcpu has used both "page_N" and "Content_page_N" naming across
// versions.
var pagePattern = regexp.MustCompile(`page_(\d+)`)

// Extractor implements the TextExtractor interface using pdfcpu
type Extractor struct {
	logger  arbor.ILogger
	tempDir string
}

// Compile-time interface assertion
var _ interfaces.TextExtractor = (*Extractor)(nil)

// NewExtractor creates a new PDF extractor service
func NewExtractor(logger arbor.ILogger) *Extractor {
	tempDir := filepath.Join(os.TempDir(), "reperio-pdf")
	os.MkdirAll(tempDir, 0755)

	return &Extractor{
		logger:  logger,
		tempDir: tempDir,
	}
}

// ExtractFile extracts all text content from the PDF at path. Page texts
// are concatenated in page order. Safe for concurrent calls: each call
// works in its own scratch directory.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	conf := model.NewDefaultConfiguration()
	pdfCtx, err := api.ReadContextFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF context: %w", err)
	}
	pageCount := pdfCtx.PageCount

	outDir, err := os.MkdirTemp(e.tempDir, "pages-")
	if err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer os.RemoveAll(outDir)

	if err := api.ExtractContentFile(path, outDir, nil, conf); err != nil {
		return "", fmt.Errorf("failed to extract PDF content: %w", err)
	}

	pageTexts := e.readPageFiles(outDir)

	var builder strings.Builder
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		builder.WriteString(pageTexts[pageNum])
	}

	e.logger.Debug().
		Str("path", path).
		Int("pages", pageCount).
		Int("text_len", builder.Len()).
		Msg("Extracted PDF text")

	return builder.String(), nil
}

// readPageFiles reads extracted per-page content files from outDir and
// maps page number to text.
func (e *Extractor) readPageFiles(outDir string) map[int]string {
	pageTexts := make(map[int]string)

	files, err := os.ReadDir(outDir)
	if err != nil {
		e.logger.Warn().Err(err).Msg("Failed to read extracted content directory")
		return pageTexts
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		match := pagePattern.FindStringSubmatch(file.Name())
		if match == nil {
			continue
		}
		pageNum, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		content, err := os.ReadFile(filepath.Join(outDir, file.Name()))
		if err != nil {
			continue
		}
		pageTexts[pageNum] = string(content)
	}

	return pageTexts
}
