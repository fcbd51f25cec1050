package cache_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/postsync/cli/cache"
	"github.com/postsync/cli/constants"
	"github.com/postsync/cli/entity"
	pserrors "github.com/postsync/cli/errors"
	"github.com/postsync/cli/uuid"
	"github.com/stretchr/testify/require"
)

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (*entity.Blob, error) {
	return nil, errors.New("disk on fire")
}

func (brokenStore) Put(context.Context, string, *entity.Blob) error {
	return errors.New("disk on fire")
}

func testBlob() *entity.Blob {
	return &entity.Blob{
		SHA:      "3b18e512dba79e4c8300dd08aeb37f8e728b8dad",
		Path:     "_posts/2020-01-01-hello.md",
		Content:  "---\ntitle: Hello\n---\nHi\n",
		Encoding: "base64",
		Size:     24,
	}
}

// storeContract checks the behaviour every Store must share.
func storeContract(t *testing.T, store cache.Store) {
	ctx := context.Background()
	blob := testBlob()

	_, err := store.Get(ctx, blob.SHA)
	require.True(t, errors.Is(err, cache.ErrMiss))

	require.NoError(t, store.Put(ctx, blob.SHA, blob))
	got, err := store.Get(ctx, blob.SHA)
	require.NoError(t, err)
	require.Equal(t, blob, got)

	updated := *blob
	updated.Path = "_posts/2020-01-01-renamed.md"
	require.NoError(t, store.Put(ctx, blob.SHA, &updated))
	got, err = store.Get(ctx, blob.SHA)
	require.NoError(t, err)
	require.Equal(t, updated.Path, got.Path)
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, cache.NewMemoryStore())
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	blob := testBlob()
	require.NoError(t, store.Put(ctx, blob.SHA, blob))

	got, err := store.Get(ctx, blob.SHA)
	require.NoError(t, err)
	got.Path = "mutated"

	again, err := store.Get(ctx, blob.SHA)
	require.NoError(t, err)
	require.Equal(t, testBlob().Path, again.Path)
	require.Equal(t, 1, store.Len())
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	store, err := cache.NewFileStore(dir)
	require.NoError(t, err)
	storeContract(t, store)

	sha := testBlob().SHA
	require.FileExists(t, filepath.Join(dir, sha[:2], sha[2:4], sha+".json"))
}

func TestFileStoreCorruptEntry(t *testing.T) {
	dir := t.TempDir()
	store, err := cache.NewFileStore(dir)
	require.NoError(t, err)

	sha := testBlob().SHA
	path := filepath.Join(dir, sha[:2], sha[2:4], sha+".json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err = store.Get(context.Background(), sha)
	require.Error(t, err)
	require.False(t, errors.Is(err, cache.ErrMiss))
}

func TestFileStoreRejectsPathLikeShas(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "cache")
	store, err := cache.NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	outside := filepath.Join(root, "x", "evil.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(outside), 0o755))
	require.NoError(t, os.WriteFile(outside, []byte(`{"sha":"evil","content":"secret"}`), 0o644))

	for _, sha := range []string{"../x/evil", "..%2Fx", "ab/../../x/evil", "ABCDEF12", ""} {
		t.Run(sha, func(t *testing.T) {
			require.Error(t, store.Put(ctx, sha, testBlob()))
			_, err := store.Get(ctx, sha)
			require.True(t, errors.Is(err, cache.ErrMiss))
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestBlobs(t *testing.T) {
	ctx := context.Background()
	blob := testBlob()

	t.Run("Miss then hit", func(t *testing.T) {
		blobs := cache.New(constants.CacheMemory, cache.NewMemoryStore())
		_, ok := blobs.FetchBlob(ctx, blob.SHA)
		require.False(t, ok)

		require.Equal(t, blob, blobs.SetBlob(ctx, blob.SHA, blob))
		got, ok := blobs.FetchBlob(ctx, blob.SHA)
		require.True(t, ok)
		require.Equal(t, blob, got)
	})

	t.Run("Empty sha is never cached", func(t *testing.T) {
		blobs := cache.New(constants.CacheMemory, cache.NewMemoryStore())
		blobs.SetBlob(ctx, "", blob)
		_, ok := blobs.FetchBlob(ctx, "")
		require.False(t, ok)
	})

	t.Run("Store failures degrade to misses", func(t *testing.T) {
		blobs := cache.New("broken", brokenStore{})
		_, ok := blobs.FetchBlob(ctx, blob.SHA)
		require.False(t, ok)
		require.Equal(t, blob, blobs.SetBlob(ctx, blob.SHA, blob))
	})

	t.Run("Noop store never hits", func(t *testing.T) {
		blobs := cache.New(constants.CacheNone, cache.NoopStore{})
		blobs.SetBlob(ctx, blob.SHA, blob)
		_, ok := blobs.FetchBlob(ctx, blob.SHA)
		require.False(t, ok)
		require.NoError(t, blobs.Close())
	})
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		cfg     *entity.CacheConfig
		store   string
		wantErr error
	}{
		{name: "Memory", cfg: &entity.CacheConfig{Backend: "memory"}, store: constants.CacheMemory},
		{name: "File is the default", cfg: &entity.CacheConfig{Dir: t.TempDir()}, store: constants.CacheFile},
		{name: "None", cfg: &entity.CacheConfig{Backend: "none"}, store: constants.CacheNone},
		{name: "Postgres needs a url", cfg: &entity.CacheConfig{Backend: "postgres"}, wantErr: pserrors.CacheDatabaseURLNotSet},
		{name: "S3 needs a bucket", cfg: &entity.CacheConfig{Backend: "s3"}, wantErr: pserrors.CacheBucketNotSet},
		{name: "Unknown backend", cfg: &entity.CacheConfig{Backend: "redis"}, wantErr: pserrors.UnknownCacheBackend},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blobs, err := cache.Open(ctx, tt.cfg)
			if tt.wantErr != nil {
				require.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.store, blobs.Name())
		})
	}
}

func TestPostgresStore(t *testing.T) {
	url := os.Getenv("POSTSYNC_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("POSTSYNC_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	store, err := cache.NewPostgresStore(ctx, url)
	require.NoError(t, err)
	defer store.Close()

	blob := testBlob()
	blob.SHA = "pg" + blob.SHA[2:]
	storeContractWithBlob(t, store, blob)
}

func TestS3Store(t *testing.T) {
	endpoint := os.Getenv("POSTSYNC_TEST_S3_ENDPOINT")
	if endpoint == "" {
		t.Skip("POSTSYNC_TEST_S3_ENDPOINT not set")
	}
	store, err := cache.NewS3Store(context.Background(), &entity.S3Config{
		Bucket:    os.Getenv("POSTSYNC_TEST_S3_BUCKET"),
		Prefix:    "postsync-test/" + uuid.New() + "/",
		Region:    "us-east-1",
		Endpoint:  endpoint,
		AccessKey: os.Getenv("POSTSYNC_TEST_S3_ACCESS_KEY"),
		SecretKey: os.Getenv("POSTSYNC_TEST_S3_SECRET_KEY"),
		PathStyle: true,
	})
	require.NoError(t, err)
	storeContract(t, store)
}

// storeContractWithBlob is storeContract for stores shared between runs,
// where the entry may already exist.
func storeContractWithBlob(t *testing.T, store cache.Store, blob *entity.Blob) {
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, blob.SHA, blob))
	got, err := store.Get(ctx, blob.SHA)
	require.NoError(t, err)
	require.Equal(t, blob, got)

	_, err = store.Get(ctx, "0000000000000000000000000000000000000000")
	require.True(t, errors.Is(err, cache.ErrMiss))
}
