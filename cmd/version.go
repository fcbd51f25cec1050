package cmd

import (
	"context"
	"fmt"

	"github.com/postsync/cli/constants"
	"github.com/postsync/cli/entity"
	"github.com/postsync/cli/gateway"
	"github.com/postsync/cli/logging"
)

func (h *Handler) Version(ctx context.Context, req *entity.CommandRequest) error {
	fmt.Println(fmt.Sprintf("postsync version %s", constants.Version))
	if constants.Version != "source" {
		latest, err := h.latestVersion(ctx)
		if err != nil {
			logging.Debug("release check failed", logging.Err(err))
			return nil
		}
		if latest != "" && latest != constants.Version {
			fmt.Println("A newer version of postsync is available, please update to:", latest)
		}
	}
	return nil
}

func (h *Handler) latestVersion(ctx context.Context) (string, error) {
	gtwy, err := gateway.New(&entity.RepoConfig{Token: h.cfg.GetToken()})
	if err != nil {
		return "", err
	}
	return gtwy.LatestRelease(ctx, constants.ReleaseOwner, constants.ReleaseRepository)
}
