package controller

import (
	"context"

	"github.com/postsync/cli/constants"
	"github.com/postsync/cli/entity"
	"github.com/postsync/cli/logging"
)

// Compare lists the files that changed between sha and the tip of the
// configured branch.
func (c *Controller) Compare(ctx context.Context, sha string) ([]*entity.FileInfo, error) {
	files, err := c.forge.Compare(ctx, sha, c.branch())
	if err != nil {
		return nil, err
	}

	infos := make([]*entity.FileInfo, 0, len(files))
	for _, f := range files {
		infos = append(infos, &entity.FileInfo{
			SHA:    f.SHA,
			Path:   f.Filename,
			Status: f.Status,
		})
	}
	return infos, nil
}

// RemoteContents reads the file a post maps to.
func (c *Controller) RemoteContents(ctx context.Context, post *entity.Post) (*entity.Content, error) {
	return c.forge.Contents(ctx, post.GitHubPath())
}

// Exists reports whether path can be read from the forge. Any failure,
// not only a 404, counts as absent.
func (c *Controller) Exists(ctx context.Context, path string) bool {
	if _, err := c.forge.Contents(ctx, path); err != nil {
		logging.WithContext(ctx).Debug("path not readable",
			logging.String("path", path),
			logging.Err(err),
		)
		return false
	}
	return true
}

// TreeRecursive lists every blob reachable from sha. "root" and "" stand
// for the configured branch.
func (c *Controller) TreeRecursive(ctx context.Context, sha string) ([]*entity.FileInfo, error) {
	if sha == "" || sha == constants.RootTree {
		sha = c.branch()
	}

	entries, err := c.forge.Tree(ctx, sha, true)
	if err != nil {
		return nil, err
	}

	infos := make([]*entity.FileInfo, 0, len(entries))
	for _, e := range entries {
		if !e.IsBlob() {
			continue
		}
		infos = append(infos, &entity.FileInfo{
			SHA:  e.SHA,
			Path: e.Path,
		})
	}
	return infos, nil
}

// Blob returns the blob for info. A cached sha is served without touching
// the forge; the result then carries info's path.
func (c *Controller) Blob(ctx context.Context, info *entity.FileInfo) (*entity.Blob, error) {
	if cached, ok := c.cache.FetchBlob(ctx, info.SHA); ok {
		if info.Path == "" || cached.Path == info.Path {
			return cached, nil
		}
		blob := *cached
		blob.Path = info.Path
		return &blob, nil
	}

	blob, err := c.forge.Blob(ctx, info.SHA)
	if err != nil {
		return nil, err
	}
	if blob.SHA == "" {
		blob.SHA = info.SHA
	}
	blob.Path = info.Path
	return c.cache.SetBlob(ctx, blob.SHA, blob), nil
}

// Blobs fetches every entry, leaving out nil entries and those that fail.
func (c *Controller) Blobs(ctx context.Context, infos []*entity.FileInfo) []*entity.Blob {
	blobs := make([]*entity.Blob, 0, len(infos))
	for _, info := range infos {
		if info == nil {
			continue
		}
		blob, err := c.Blob(ctx, info)
		if err != nil {
			logging.WithContext(ctx).Warn("skipping blob",
				logging.String("sha", info.SHA),
				logging.String("path", info.Path),
				logging.Err(err),
			)
			continue
		}
		blobs = append(blobs, blob)
	}
	return blobs
}

// ListDirectory lists one level of path at ref, the configured branch when
// ref is empty.
func (c *Controller) ListDirectory(ctx context.Context, ref string, path string) ([]*entity.DirEntry, error) {
	if ref == "" {
		ref = c.branch()
	}
	return c.forge.ListDirectory(ctx, &entity.DirectoryRequest{
		Owner:      c.repo.Owner,
		Repository: c.repo.Repository,
		Ref:        ref,
		Path:       path,
	})
}
