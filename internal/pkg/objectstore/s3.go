package objectstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Config configures the S3-compatible storage backend
type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	// PublicBaseURL overrides the endpoint when building public URLs,
	// for deployments that serve objects through a CDN domain.
	PublicBaseURL string
}

// S3Backend stores objects in an S3-compatible service (MinIO, Supabase
// storage, AWS S3).
type S3Backend struct {
	client        *minio.Client
	publicBaseURL string
}

// NewS3Backend creates a backend for an S3-compatible endpoint.
func NewS3Backend(cfg S3Config) (*S3Backend, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	publicBaseURL := cfg.PublicBaseURL
	if publicBaseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicBaseURL = scheme + "://" + cfg.Endpoint
	}

	return &S3Backend{
		client:        client,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// Put uploads an object, overwriting any existing object at the same path.
func (b *S3Backend) Put(ctx context.Context, bucket, objectPath string, r io.Reader, size int64, opts PutOptions) error {
	// S3 PUT semantics already overwrite on conflict, matching opts.Upsert.
	_, err := b.client.PutObject(ctx, bucket, objectPath, r, size, minio.PutObjectOptions{
		ContentType:  opts.ContentType,
		CacheControl: opts.CacheControl,
	})
	if err != nil {
		return fmt.Errorf("s3 put %s/%s: %w", bucket, objectPath, err)
	}
	return nil
}

// PublicURL returns the externally dereferenceable address of an object.
func (b *S3Backend) PublicURL(bucket, objectPath string) (string, error) {
	if bucket == "" || objectPath == "" {
		return "", fmt.Errorf("cannot build public URL for %q/%q", bucket, objectPath)
	}
	return b.publicBaseURL + "/" + bucket + "/" + objectPath, nil
}

// Remove deletes an object.
func (b *S3Backend) Remove(ctx context.Context, bucket, objectPath string) error {
	if err := b.client.RemoveObject(ctx, bucket, objectPath, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("s3 remove %s/%s: %w", bucket, objectPath, err)
	}
	return nil
}
