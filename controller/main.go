package controller

import (
	"context"

	"github.com/postsync/cli/constants"
	"github.com/postsync/cli/entity"
)

// Forge is the remote repository API.
type Forge interface {
	Compare(ctx context.Context, base string, head string) ([]*entity.CommitFile, error)
	Contents(ctx context.Context, path string) (*entity.Content, error)
	Tree(ctx context.Context, sha string, recursive bool) ([]*entity.TreeEntry, error)
	Blob(ctx context.Context, sha string) (*entity.Blob, error)
	ListDirectory(ctx context.Context, req *entity.DirectoryRequest) ([]*entity.DirEntry, error)
}

// BlobCache holds blobs by sha. SetBlob returns the blob callers should use
// from then on.
type BlobCache interface {
	FetchBlob(ctx context.Context, sha string) (*entity.Blob, bool)
	SetBlob(ctx context.Context, sha string, blob *entity.Blob) *entity.Blob
}

type Controller struct {
	forge Forge
	cache BlobCache
	repo  *entity.RepoConfig
}

func New(forge Forge, cache BlobCache, repo *entity.RepoConfig) *Controller {
	return &Controller{
		forge: forge,
		cache: cache,
		repo:  repo,
	}
}

func (c *Controller) Repo() *entity.RepoConfig {
	return c.repo
}

func (c *Controller) branch() string {
	if c.repo.Branch == "" {
		return constants.DefaultBranch
	}
	return c.repo.Branch
}
