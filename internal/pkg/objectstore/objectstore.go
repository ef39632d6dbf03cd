package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/campuslink/campuslink/internal/pkg/apperrors"
	"github.com/campuslink/campuslink/internal/pkg/imageutil"
	"github.com/campuslink/campuslink/internal/pkg/logger"
)

// MaxUploadSize is the hard cap on a single image upload.
const MaxUploadSize = 5 << 20 // 5 MB

// CategoryNews maps to its own dedicated bucket; every other category
// shares the uploads bucket under a category-named folder.
const CategoryNews = "news"

// CacheControl applied to every stored object.
const cacheControl = "max-age=3600"

var allowedExtensions = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "gif": true, "webp": true, "avif": true,
}

// PutOptions carries per-object storage directives
type PutOptions struct {
	ContentType  string
	CacheControl string
	// Upsert requests overwrite-on-conflict semantics
	Upsert bool
}

// Backend is the storage backend the adapter writes through. Implementations
// exist for an S3-compatible service and for the local filesystem.
type Backend interface {
	Put(ctx context.Context, bucket, objectPath string, r io.Reader, size int64, opts PutOptions) error
	PublicURL(bucket, objectPath string) (string, error)
	Remove(ctx context.Context, bucket, objectPath string) error
}

// Buckets names the two buckets the application writes to
type Buckets struct {
	Uploads string
	News    string
}

// Service validates, optimizes and uploads images through a Backend.
type Service struct {
	backend  Backend
	buckets  Buckets
	optimize imageutil.Options
}

// NewService creates a new object storage Service
func NewService(backend Backend, buckets Buckets, optimize imageutil.Options) *Service {
	return &Service{
		backend:  backend,
		buckets:  buckets,
		optimize: optimize,
	}
}

// UploadImage validates the file, compresses it best-effort, uploads it to
// a content-addressed path and returns the object's public URL. Validation
// failures are reported before any backend call is made.
func (s *Service) UploadImage(ctx context.Context, fh *multipart.FileHeader, category, folder string) (string, error) {
	if fh == nil || fh.Size == 0 {
		return "", apperrors.NewCustomError(apperrors.ErrFileMissing, "no image file provided")
	}

	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", apperrors.NewCustomError(apperrors.ErrFileNotImage,
			fmt.Sprintf("expected an image, got content type %q", contentType))
	}

	if fh.Size > MaxUploadSize {
		return "", apperrors.NewCustomError(apperrors.ErrFileTooLarge,
			fmt.Sprintf("file is %s, the limit is %s",
				imageutil.FileSizeString(fh.Size), imageutil.FileSizeString(MaxUploadSize)))
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fh.Filename), "."))
	if !allowedExtensions[ext] {
		return "", apperrors.NewCustomError(apperrors.ErrFileTypeUnsupported,
			fmt.Sprintf("extension %q is not an allowed image type", ext))
	}

	data, err := readAll(fh)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	// Best-effort optimization: a compression failure is logged and the
	// original bytes are uploaded instead.
	if res, optErr := imageutil.Optimize(data, fh.Filename, s.optimize); optErr != nil {
		logger.Warn().Err(optErr).Str("filename", fh.Filename).Msg("Image optimization failed, uploading original")
	} else {
		if res.Compressed {
			stats := imageutil.Stats(int64(len(data)), int64(len(res.Data)))
			logger.Debug().
				Str("filename", fh.Filename).
				Str("saved", imageutil.FileSizeString(stats.SavedBytes)).
				Float64("savedPercent", stats.SavedPercent).
				Msg("Image compressed")
		}
		data = res.Data
		contentType = res.ContentType
	}

	bucket := s.bucketFor(category)
	objectPath := s.objectPath(category, folder, uniqueFilename(ext))

	err = s.backend.Put(ctx, bucket, objectPath, bytes.NewReader(data), int64(len(data)), PutOptions{
		ContentType:  contentType,
		CacheControl: cacheControl,
		Upsert:       true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}

	url, err := s.backend.PublicURL(bucket, objectPath)
	if err != nil || url == "" {
		return "", fmt.Errorf("%w: object %s/%s", apperrors.ErrPublicURLUnavailable, bucket, objectPath)
	}

	logger.Info().Str("bucket", bucket).Str("path", objectPath).Msg("Image uploaded")
	return url, nil
}

// UploadImages uploads every file concurrently and returns their public
// URLs in input order. Any single failure fails the whole call; uploads
// that already succeeded are not rolled back.
func (s *Service) UploadImages(ctx context.Context, files []*multipart.FileHeader, category, folder string) ([]string, error) {
	urls := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, fh := range files {
		i, fh := i, fh
		g.Go(func() error {
			url, err := s.UploadImage(gctx, fh, category, folder)
			if err != nil {
				return fmt.Errorf("upload %q: %w", fh.Filename, err)
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

// DeleteImage removes the object a public URL points at. The object path is
// derived by locating the bucket name inside the URL; for every category
// except news the path's first segment must equal the category, which guards
// against deleting another category's object through the wrong endpoint.
func (s *Service) DeleteImage(ctx context.Context, url, category string) error {
	bucket := s.bucketFor(category)

	marker := "/" + bucket + "/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return apperrors.NewCustomError(apperrors.ErrInvalidStoragePath,
			fmt.Sprintf("bucket %q not present in URL", bucket))
	}

	objectPath := url[idx+len(marker):]
	if q := strings.IndexByte(objectPath, '?'); q >= 0 {
		objectPath = objectPath[:q]
	}
	if objectPath == "" {
		return apperrors.NewCustomError(apperrors.ErrInvalidStoragePath, "empty object path")
	}

	if category != CategoryNews {
		first, _, _ := strings.Cut(objectPath, "/")
		if first != category {
			return apperrors.NewCustomError(apperrors.ErrInvalidStoragePath,
				fmt.Sprintf("object path %q does not belong to category %q", objectPath, category))
		}
	}

	if err := s.backend.Remove(ctx, bucket, objectPath); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", bucket, objectPath, err)
	}

	logger.Info().Str("bucket", bucket).Str("path", objectPath).Msg("Image deleted")
	return nil
}

func (s *Service) bucketFor(category string) string {
	if category == CategoryNews {
		return s.buckets.News
	}
	return s.buckets.Uploads
}

// objectPath builds "{category}/{folder}/{filename}"; the news category maps
// to a dedicated bucket and carries no category segment of its own.
func (s *Service) objectPath(category, folder, filename string) string {
	var segments []string
	if category != CategoryNews {
		segments = append(segments, category)
	}
	if folder != "" {
		segments = append(segments, folder)
	}
	segments = append(segments, filename)
	return strings.Join(segments, "/")
}

func uniqueFilename(ext string) string {
	return fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), uuid.New().String(), ext)
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
