package cache

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/postsync/cli/entity"
	"github.com/postsync/cli/lib/atomic"
)

// FileStore keeps one JSON document per blob under
// <dir>/<sha[:2]>/<sha[2:4]>/<sha>.json.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create cache dir")
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) Get(_ context.Context, sha string) (*entity.Blob, error) {
	if !entity.IsSHA(sha) {
		return nil, ErrMiss
	}
	data, err := ioutil.ReadFile(f.path(sha))
	if os.IsNotExist(err) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	var blob entity.Blob
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, errors.Wrapf(err, "decode cached blob %s", sha)
	}
	return &blob, nil
}

func (f *FileStore) Put(_ context.Context, sha string, blob *entity.Blob) error {
	if !entity.IsSHA(sha) {
		return errors.Errorf("invalid blob sha %q", sha)
	}
	data, err := json.Marshal(blob)
	if err != nil {
		return err
	}
	return atomic.WriteFile(f.path(sha), data, 0o644)
}

// path expects a sha accepted by entity.IsSHA.
func (f *FileStore) path(sha string) string {
	name := sha + ".json"
	if len(sha) < 4 {
		return filepath.Join(f.dir, name)
	}
	return filepath.Join(f.dir, sha[:2], sha[2:4], name)
}
