// Package storage persists uploaded gallery media through a portable blob API.
// The bucket URL in config selects the backend (s3://, gs://, or file:// for
// local development).
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"vendir/config"
	"vendir/internal/domain/lifecycle"
	"vendir/internal/domain/service"
	"vendir/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the bucket drivers supported by the media.bucket_url config key.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket    *blob.Bucket
	publicURL string
}

// New opens the configured bucket and returns it as a service.MediaStorage.
func New(params Params) (service.MediaStorage, error) {
	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:    bucket,
		publicURL: strings.TrimRight(params.Config.Media.PublicURL, "/"),
	}, nil
}

// Save writes the object under key and returns its public URL.
func (s *blobStorage) Save(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write media object")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize media object")
	}

	return s.publicURL + "/" + key, nil
}

// Delete removes the object previously stored under key.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete media object")
	}

	return nil
}
