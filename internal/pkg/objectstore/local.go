package objectstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/campuslink/campuslink/internal/pkg/logger"
)

// LocalBackend stores objects on the local filesystem, one directory per
// bucket, for development without an S3 endpoint. Objects are served back
// through the API's static file route.
type LocalBackend struct {
	basePath string
	baseURL  string
}

// NewLocalBackend creates a local disk backend rooted at basePath. baseURL
// is prepended when building public URLs and must match the static route
// the server mounts for basePath.
func NewLocalBackend(basePath, baseURL string) (*LocalBackend, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalBackend{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// Put writes the object under {basePath}/{bucket}/{objectPath}, creating
// intermediate directories and overwriting any existing file.
func (b *LocalBackend) Put(ctx context.Context, bucket, objectPath string, r io.Reader, size int64, opts PutOptions) error {
	dstPath := filepath.Join(b.basePath, bucket, filepath.FromSlash(objectPath))

	if err := os.MkdirAll(filepath.Dir(dstPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("failed to create object file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, r); err != nil {
		// Remove the partially written file
		_ = os.Remove(dstPath)
		return fmt.Errorf("failed to write object content: %w", err)
	}

	return nil
}

// PublicURL returns "{baseURL}/{bucket}/{objectPath}".
func (b *LocalBackend) PublicURL(bucket, objectPath string) (string, error) {
	if bucket == "" || objectPath == "" {
		return "", fmt.Errorf("cannot build public URL for %q/%q", bucket, objectPath)
	}
	return b.baseURL + "/" + bucket + "/" + objectPath, nil
}

// Remove deletes the object file. Removing an object that does not exist
// is treated as success (idempotent delete).
func (b *LocalBackend) Remove(ctx context.Context, bucket, objectPath string) error {
	dstPath := filepath.Join(b.basePath, bucket, filepath.FromSlash(objectPath))

	if _, err := os.Stat(dstPath); os.IsNotExist(err) {
		logger.Warn().Str("path", dstPath).Msg("Object to delete does not exist")
		return nil
	}

	if err := os.Remove(dstPath); err != nil {
		return fmt.Errorf("failed to delete object file: %w", err)
	}
	return nil
}
