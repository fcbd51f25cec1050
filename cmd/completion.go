package cmd

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/postsync/cli/entity"
)

// Completion writes a shell completion script for the postsync command tree
// to stdout.
func (h *Handler) Completion(ctx context.Context, req *entity.CommandRequest) error {
	root := req.Cmd.Root()
	switch shell := req.Args[0]; shell {
	case "bash":
		return root.GenBashCompletion(os.Stdout)
	case "zsh":
		return root.GenZshCompletion(os.Stdout)
	case "fish":
		return root.GenFishCompletion(os.Stdout, true)
	case "powershell":
		return root.GenPowerShellCompletion(os.Stdout)
	default:
		return errors.Errorf("unsupported shell %q", shell)
	}
}
