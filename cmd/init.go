package cmd

import (
	"context"
	"fmt"

	"github.com/postsync/cli/configs"
	"github.com/postsync/cli/constants"
	"github.com/postsync/cli/entity"
	"github.com/postsync/cli/errors"
	"github.com/postsync/cli/lib/git"
	"github.com/postsync/cli/ui"
)

// Init links the working directory to a remote repository. Without
// arguments it prompts, suggesting the local checkout's origin and branch.
func (h *Handler) Init(ctx context.Context, req *entity.CommandRequest) error {
	meta, _ := git.GetAllMetadata(".")
	branch := meta.Branch
	if branch == "" {
		branch = constants.DefaultBranch
	}

	var (
		fullName string
		err      error
	)
	if len(req.Args) > 0 {
		fullName = req.Args[0]
		if len(req.Args) > 1 {
			branch = req.Args[1]
		}
	} else {
		if current, err := h.cfg.GetRepoConfig(); err == nil {
			relink, err := ui.PromptConfirm(fmt.Sprintf("Already linked to %s, link again", current.FullName()))
			if err != nil || !relink {
				return err
			}
		}
		fullName, err = ui.PromptRepository(meta.RepoName)
		if err != nil {
			return err
		}
		branch, err = ui.PromptTextDefault("Branch", branch)
		if err != nil {
			return err
		}
	}

	owner, repo, err := configs.ParseRepository(fullName)
	if err != nil {
		return err
	}
	apiURL, _ := req.Cmd.Flags().GetString("api-url")
	webURL, _ := req.Cmd.Flags().GetString("web-url")

	err = h.cfg.SetRepoConfig(&entity.RepoConfig{
		Owner:      owner,
		Repository: repo,
		Branch:     branch,
		BaseURL:    apiURL,
		WebURL:     webURL,
	})
	if err != nil {
		return err
	}

	token, _ := req.Cmd.Flags().GetString("token")
	if token != "" {
		if err := h.cfg.SetToken(token); err != nil {
			return err
		}
	}

	fmt.Printf("%s Linked to %s on %s\n", ui.GreenText("✔"), ui.MagentaText(owner+"/"+repo), ui.BlueText(branch))
	if h.cfg.GetToken() == "" {
		fmt.Print(ui.AlertWarning(errors.TokenNotSet.Error()))
	}
	return nil
}
