package gateway

import (
	"context"
)

func (g *Gateway) LatestRelease(ctx context.Context, owner string, repo string) (string, error) {
	release, _, err := g.ghClient.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return "", err
	}
	return release.GetTagName(), nil
}
