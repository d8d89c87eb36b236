// Package storage keeps uploaded images in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

// BucketParams holds dependencies for OpenBucket, injected by Fx
type BucketParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// OpenBucket opens the bucket named by storage.bucketURL and closes it on shutdown.
func OpenBucket(params BucketParams) (*blob.Bucket, error) {
	bucketURL := defaultBucketURL
	if params.Config.Storage != nil && params.Config.Storage.BucketURL != "" {
		bucketURL = params.Config.Storage.BucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Image bucket opened", slog.String("url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}

type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobImageStore wraps bucket as an ImageStore.
func NewBlobImageStore(bucket *blob.Bucket, cfg *config.Config) service.ImageStore {
	baseURL := ""
	if cfg.Storage != nil {
		baseURL = strings.TrimRight(cfg.Storage.PublicBaseURL, "/")
	}

	return &blobImageStore{bucket: bucket, publicBaseURL: baseURL}
}

// Save writes data under a uuid name that keeps the original extension.
func (s *blobImageStore) Save(ctx context.Context, originalName, contentType string, data []byte) (string, error) {
	name := uuid.NewString() + imageExtension(originalName, contentType)

	if err := s.bucket.WriteAll(ctx, name, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "failed to write image %s", name)
	}

	return name, nil
}

// Delete removes the image; a missing image reports false without error.
func (s *blobImageStore) Delete(ctx context.Context, name string) (bool, error) {
	if !validName(name) {
		return false, nil
	}

	if err := s.bucket.Delete(ctx, name); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return false, nil
		}

		return false, errors.Wrapf(err, "failed to delete image %s", name)
	}

	return true, nil
}

// Exists reports whether the image is stored.
func (s *blobImageStore) Exists(ctx context.Context, name string) (bool, error) {
	if !validName(name) {
		return false, nil
	}

	exists, err := s.bucket.Exists(ctx, name)
	if err != nil {
		return false, errors.Wrapf(err, "failed to stat image %s", name)
	}

	return exists, nil
}

// URL joins the public base URL and the image name.
func (s *blobImageStore) URL(name string) string {
	if name == "" {
		return ""
	}
	if s.publicBaseURL == "" {
		return name
	}

	return s.publicBaseURL + "/" + name
}

func imageExtension(originalName, contentType string) string {
	if ext := strings.ToLower(filepath.Ext(originalName)); ext != "" {
		return ext
	}

	exts, err := mime.ExtensionsByType(contentType)
	if err != nil || len(exts) == 0 {
		return ""
	}

	return exts[0]
}

// validName rejects empty names and anything that could escape the bucket root.
func validName(name string) bool {
	return name != "" && !strings.Contains(name, "/") && !strings.Contains(name, "..")
}
