package gateway

import (
	"context"

	"github.com/google/go-github/github"
	"github.com/pkg/errors"
	"github.com/postsync/cli/entity"
)

// Contents reads a file or directory at path on the configured branch.
func (g *Gateway) Contents(ctx context.Context, path string) (*entity.Content, error) {
	opts := &github.RepositoryContentGetOptions{Ref: g.repo.Branch}
	file, dir, _, err := g.ghClient.Repositories.GetContents(ctx, g.owner(), g.name(), path, opts)
	if err != nil {
		return nil, err
	}

	if file != nil {
		return toContent(file)
	}

	listing := &entity.Content{
		Type: "dir",
		Path: path,
	}
	for _, c := range dir {
		entry, err := toContent(c)
		if err != nil {
			return nil, err
		}
		listing.Entries = append(listing.Entries, entry)
	}
	return listing, nil
}

func toContent(c *github.RepositoryContent) (*entity.Content, error) {
	content := &entity.Content{
		Type:     c.GetType(),
		Name:     c.GetName(),
		Path:     c.GetPath(),
		SHA:      c.GetSHA(),
		Size:     int64(c.GetSize()),
		Encoding: c.GetEncoding(),
		HTMLURL:  c.GetHTMLURL(),
	}
	if c.Content != nil {
		decoded, err := entity.DecodeContent(content.Encoding, *c.Content)
		if err != nil {
			return nil, errors.Wrapf(err, "decode %s", content.Path)
		}
		content.Content = decoded
	}
	return content, nil
}
