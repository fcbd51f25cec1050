package gateway

import (
	"context"

	"github.com/postsync/cli/entity"
)

func (g *Gateway) Tree(ctx context.Context, sha string, recursive bool) ([]*entity.TreeEntry, error) {
	tree, _, err := g.ghClient.Git.GetTree(ctx, g.owner(), g.name(), sha, recursive)
	if err != nil {
		return nil, err
	}

	entries := make([]*entity.TreeEntry, 0, len(tree.Entries))
	for _, e := range tree.Entries {
		entries = append(entries, &entity.TreeEntry{
			SHA:  e.GetSHA(),
			Path: e.GetPath(),
			Type: e.GetType(),
			Mode: e.GetMode(),
			Size: int64(e.GetSize()),
		})
	}
	return entries, nil
}
