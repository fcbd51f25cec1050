package gateway

import (
	"context"

	"github.com/pkg/errors"
	"github.com/postsync/cli/entity"
)

// Blob fetches one blob by sha. The returned blob has no Path; the forge
// does not know which path it was reached through.
func (g *Gateway) Blob(ctx context.Context, sha string) (*entity.Blob, error) {
	blob, _, err := g.ghClient.Git.GetBlob(ctx, g.owner(), g.name(), sha)
	if err != nil {
		return nil, err
	}

	content, err := entity.DecodeContent(blob.GetEncoding(), blob.GetContent())
	if err != nil {
		return nil, errors.Wrapf(err, "decode blob %s", sha)
	}
	return &entity.Blob{
		SHA:      blob.GetSHA(),
		Content:  content,
		Encoding: blob.GetEncoding(),
		Size:     int64(blob.GetSize()),
	}, nil
}
