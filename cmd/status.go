package cmd

import (
	"context"
	"fmt"

	"github.com/postsync/cli/entity"
	"github.com/postsync/cli/lib/git"
	"github.com/postsync/cli/ui"
)

func (h *Handler) Status(ctx context.Context, req *entity.CommandRequest) error {
	repo, err := h.cfg.GetRepoConfig()
	if err != nil {
		return err
	}
	cacheCfg := h.cfg.GetCacheConfig()

	token := "not set"
	if repo.Token != "" {
		token = ui.ObscureText(repo.Token)
	}
	items := map[string]string{
		"Repository": repo.FullName(),
		"Branch":     repo.Branch,
		"Token":      token,
		"Cache":      cacheCfg.Backend,
	}
	if repo.BaseURL != "" {
		items["API"] = repo.BaseURL
	}
	if cacheCfg.Backend == "file" {
		items["Cache dir"] = cacheCfg.Dir
	}

	if meta, err := git.GetAllMetadata("."); err == nil {
		items["Checkout"] = meta.Root
		items["Local branch"] = meta.Branch
		if meta.Commit.Hash != "" {
			items["Local commit"] = ui.Truncate(meta.Commit.Hash, 10)
		}
		if meta.HasLocalChanges {
			items["Local changes"] = "yes"
		}
	}

	fmt.Print(ui.KeyValues(items))
	return nil
}
