// Package cache keeps blobs keyed by their git sha. Blob content is
// immutable for a given sha, so entries never expire.
package cache

import (
	"context"
	"errors"
	"io"

	"github.com/postsync/cli/entity"
	"github.com/postsync/cli/logging"
	"github.com/postsync/cli/metrics"
)

// ErrMiss is returned by a Store when no entry exists for a sha.
var ErrMiss = errors.New("cache miss")

type Store interface {
	Get(ctx context.Context, sha string) (*entity.Blob, error)
	Put(ctx context.Context, sha string, blob *entity.Blob) error
}

// Blobs exposes a Store as the blob cache used by the controller. Store
// failures are logged and treated as misses.
type Blobs struct {
	store Store
	name  string
}

func New(name string, store Store) *Blobs {
	return &Blobs{store: store, name: name}
}

func (b *Blobs) Name() string {
	return b.name
}

// Close releases the store's resources, if it holds any.
func (b *Blobs) Close() error {
	if closer, ok := b.store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (b *Blobs) FetchBlob(ctx context.Context, sha string) (*entity.Blob, bool) {
	if sha == "" {
		return nil, false
	}
	blob, err := b.store.Get(ctx, sha)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			metrics.RecordCacheError(b.name, "get")
			logging.WithContext(ctx).Warn("blob cache read failed",
				logging.String("store", b.name),
				logging.String("sha", sha),
				logging.Err(err),
			)
		}
		metrics.RecordCacheLookup(b.name, false)
		return nil, false
	}
	metrics.RecordCacheLookup(b.name, true)
	return blob, true
}

// SetBlob stores blob and returns it. The blob is returned even when the
// store rejects it.
func (b *Blobs) SetBlob(ctx context.Context, sha string, blob *entity.Blob) *entity.Blob {
	if sha == "" || blob == nil {
		return blob
	}
	if err := b.store.Put(ctx, sha, blob); err != nil {
		metrics.RecordCacheError(b.name, "put")
		logging.WithContext(ctx).Warn("blob cache write failed",
			logging.String("store", b.name),
			logging.String("sha", sha),
			logging.Err(err),
		)
	}
	return blob
}
