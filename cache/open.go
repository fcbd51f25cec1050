package cache

import (
	"context"

	"github.com/postsync/cli/constants"
	"github.com/postsync/cli/entity"
	"github.com/postsync/cli/errors"
)

// Open builds the blob cache selected by cfg.Backend.
func Open(ctx context.Context, cfg *entity.CacheConfig) (*Blobs, error) {
	switch cfg.Backend {
	case constants.CacheMemory:
		return New(constants.CacheMemory, NewMemoryStore()), nil
	case "", constants.CacheFile:
		store, err := NewFileStore(cfg.Dir)
		if err != nil {
			return nil, err
		}
		return New(constants.CacheFile, store), nil
	case constants.CachePostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.CacheDatabaseURLNotSet
		}
		store, err := NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return New(constants.CachePostgres, store), nil
	case constants.CacheS3:
		if cfg.S3.Bucket == "" {
			return nil, errors.CacheBucketNotSet
		}
		store, err := NewS3Store(ctx, &cfg.S3)
		if err != nil {
			return nil, err
		}
		return New(constants.CacheS3, store), nil
	case constants.CacheNone:
		return New(constants.CacheNone, NoopStore{}), nil
	default:
		return nil, errors.UnknownCacheBackend
	}
}
