package gateway

import (
	"context"

	"github.com/postsync/cli/entity"
)

// Compare lists the files changed between base and head.
func (g *Gateway) Compare(ctx context.Context, base string, head string) ([]*entity.CommitFile, error) {
	comparison, _, err := g.ghClient.Repositories.CompareCommits(ctx, g.owner(), g.name(), base, head)
	if err != nil {
		return nil, err
	}

	files := make([]*entity.CommitFile, 0, len(comparison.Files))
	for _, f := range comparison.Files {
		files = append(files, &entity.CommitFile{
			SHA:       f.GetSHA(),
			Filename:  f.GetFilename(),
			Status:    f.GetStatus(),
			Additions: f.GetAdditions(),
			Deletions: f.GetDeletions(),
		})
	}
	return files, nil
}
