// Package blob provides the object-store collaborator used to archive
// uploaded decks and publish rendered reports behind signed URLs.
package blob

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"
)

// URLTTL is the fixed expiry carried by every signed URL this service mints.
const URLTTL = 24 * time.Hour

// Store is an opaque key/value blob service.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	SignedURL(ctx context.Context, key string, expires time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

// Category namespaces storage keys by artifact kind.
type Category string

const (
	// CategoryOriginal is the uploaded deck binary, archived as-is.
	CategoryOriginal Category = "original"
	// CategoryReport is a rendered thesis PDF.
	CategoryReport Category = "report"
)

// BuildKey derives a timestamp-qualified storage key for the category.
func BuildKey(category Category, filename string, at time.Time) string {
	switch category {
	case CategoryReport:
		return fmt.Sprintf("reports/report-%d.pdf", at.UnixMilli())
	default:
		return fmt.Sprintf("%d-%s", at.UnixMilli(), sanitizeName(filename))
	}
}

// Publish uploads the bytes and mints a signed read URL with the fixed
// 24-hour expiry. Any storage error is fatal for the stage: no retry, no
// fallback.
func Publish(ctx context.Context, store Store, key string, data []byte, contentType string) (string, error) {
	if err := store.Put(ctx, key, data, contentType); err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	url, err := store.SignedURL(ctx, key, URLTTL)
	if err != nil {
		return "", fmt.Errorf("sign %s: %w", key, err)
	}
	return url, nil
}

func sanitizeName(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == "/" {
		return "upload"
	}
	return name
}
