package cmd

import (
	"context"
	"fmt"

	"github.com/postsync/cli/entity"
	"github.com/postsync/cli/ui"
)

func (h *Handler) URLs(ctx context.Context, req *entity.CommandRequest) error {
	post, err := postQuery(req)
	if err != nil {
		return err
	}
	s, err := h.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	path := post.GitHubPath()
	urls := map[string]string{
		"path":      path,
		"view_url":  s.ctrl.ViewURL(path),
		"edit_url":  s.ctrl.EditURL(path),
		"view_link": s.ctrl.ViewLink(path),
		"edit_link": s.ctrl.EditLink(path),
	}
	if wantsJSON(req) {
		return printJSON(urls)
	}
	fmt.Print(ui.KeyValues(urls))
	return nil
}

func (h *Handler) Open(ctx context.Context, req *entity.CommandRequest) error {
	s, err := h.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	url := s.repo.WebURL + "/" + s.repo.FullName()
	if len(req.Args) > 0 || req.Cmd.Flags().Changed("name") {
		post, err := postQuery(req)
		if err != nil {
			return err
		}
		url = s.ctrl.ViewURL(post.GitHubPath())
		if edit, _ := req.Cmd.Flags().GetBool("edit"); edit {
			url = s.ctrl.EditURL(post.GitHubPath())
		}
	}

	fmt.Printf("Opening %s\n", ui.BlueText(url))
	return s.gtwy.OpenInBrowser(url)
}
