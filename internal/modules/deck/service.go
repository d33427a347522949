package deck

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/decklens/core/internal/modules/storage/blob"
	"go.uber.org/zap"
)

// Service runs the extraction stage: scratch-file materialization, slide text
// extraction and archival of the original deck.
type Service struct {
	store blob.Store
	log   *zap.Logger
}

func NewService(store blob.Store, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

// ProcessResult is the outcome of a successful extraction.
type ProcessResult struct {
	Text        string
	DownloadURL string
}

// Process extracts the deck's text and archives the original payload behind
// a 24h signed URL. The scratch file is removed on every exit path. If
// extraction fails nothing is uploaded.
func (s *Service) Process(ctx context.Context, filename, contentType string, payload []byte) (*ProcessResult, error) {
	scratch, err := os.CreateTemp("", "deck-*"+filepath.Ext(filename))
	if err != nil {
		return nil, err
	}
	scratchPath := scratch.Name()
	defer os.Remove(scratchPath)

	if _, err := scratch.Write(payload); err != nil {
		scratch.Close()
		return nil, err
	}
	if err := scratch.Close(); err != nil {
		return nil, err
	}

	slides, err := extractSlides(scratchPath, filename)
	if err != nil {
		return nil, err
	}
	text := Flatten(slides)

	key := blob.BuildKey(blob.CategoryOriginal, filename, time.Now())
	url, err := blob.Publish(ctx, s.store, key, payload, contentType)
	if err != nil {
		return nil, err
	}

	s.log.Info("deck processed",
		zap.String("key", key),
		zap.Int("slides", len(slides)),
		zap.Int("bytes", len(payload)),
	)
	return &ProcessResult{Text: text, DownloadURL: url}, nil
}

func extractSlides(path, filename string) ([]Slide, error) {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return ExtractPDF(path)
	}
	return ExtractPPTX(path)
}
