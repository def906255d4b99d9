// Package localstore implements the persistence layer on top of a gocloud
// blob bucket holding JSON documents. It is the zero-dependency development
// backend: fileblob on disk in the service, memblob in tests. One document
// per aggregate, overwritten on every change.
package localstore

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"sync"

	"drogo/config"
	"drogo/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

// Store is a JSON document store over a blob bucket. All repositories of
// the local backend share one Store and its write lock; the lock is what
// makes TransactionManager.Execute atomic with respect to other writers.
type Store struct {
	bucket *blob.Bucket
	mu     sync.Mutex
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens a fileblob bucket at the configured local path.
func New(params Params) (*Store, error) {
	path := params.Config.Storage.LocalPath
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create local store directory")
	}

	bucket, err := fileblob.OpenBucket(path, &fileblob.Options{
		CreateDir: true,
		Metadata:  fileblob.MetadataDontWrite,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open local store bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("local document store opened", slog.String("path", path))

	return &Store{bucket: bucket, logger: params.Logger}, nil
}

// NewWithBucket wraps an already-open bucket. Tests pass a memblob bucket.
func NewWithBucket(bucket *blob.Bucket, logger *slog.Logger) *Store {
	return &Store{bucket: bucket, logger: logger}
}

// readDoc loads and unmarshals one document. Returns found=false when the
// key does not exist. A document that exists but does not parse is treated
// as missing and logged; the caller falls back to its empty value.
func (s *Store) readDoc(ctx context.Context, key string, out any) (found bool, err error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return false, nil
		}

		return false, errors.Wrapf(err, "failed to read document %s", key)
	}

	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("discarding corrupt document",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)

		return false, nil
	}

	return true, nil
}

// writeDoc marshals and stores one document, replacing any previous version.
func (s *Store) writeDoc(ctx context.Context, key string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to marshal document %s", key)
	}

	if err := s.bucket.WriteAll(ctx, key, data, nil); err != nil {
		return errors.Wrapf(err, "failed to write document %s", key)
	}

	return nil
}

// deleteDoc removes one document. Deleting a missing document is not an
// error.
func (s *Store) deleteDoc(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete document %s", key)
	}

	return nil
}

// listKeys returns every key under a prefix.
func (s *Store) listKeys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := iter.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, errors.Wrapf(err, "failed to list documents under %s", prefix)
		}
		keys = append(keys, obj.Key)
	}

	return keys, nil
}
