package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/postsync/cli/entity"
	"github.com/postsync/cli/errors"
	"github.com/postsync/cli/ui"
)

func statusColor(status string) string {
	switch status {
	case entity.StatusAdded:
		return ui.GreenText(status).String()
	case entity.StatusRemoved:
		return ui.RedText(status).String()
	case entity.StatusRenamed:
		return ui.BlueText(status).String()
	default:
		return ui.YellowText(status).String()
	}
}

func (h *Handler) Compare(ctx context.Context, req *entity.CommandRequest) error {
	if len(req.Args) == 0 {
		return errors.SHANotSpecified
	}
	s, err := h.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	ui.StartSpinner(&ui.SpinnerCfg{Message: "Comparing " + ui.Truncate(req.Args[0], 10) + "..." + s.repo.Branch})
	files, err := s.ctrl.Compare(ctx, req.Args[0])
	ui.StopSpinner("")
	if err != nil {
		return err
	}

	if wantsJSON(req) {
		return printJSON(files)
	}
	lines := make([]string, 0, len(files))
	for _, f := range files {
		lines = append(lines, fmt.Sprintf("%s %s", statusColor(f.Status), f.Path))
	}
	fmt.Print(ui.UnorderedList(lines))
	return nil
}

func (h *Handler) Tree(ctx context.Context, req *entity.CommandRequest) error {
	sha := ""
	if len(req.Args) > 0 {
		sha = req.Args[0]
	}
	s, err := h.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	files, err := s.ctrl.TreeRecursive(ctx, sha)
	if err != nil {
		return err
	}

	if wantsJSON(req) {
		return printJSON(files)
	}
	for _, f := range files {
		fmt.Printf("%s  %s\n", ui.GrayText(ui.Truncate(f.SHA, 10)), f.Path)
	}
	return nil
}

func (h *Handler) Blob(ctx context.Context, req *entity.CommandRequest) error {
	if len(req.Args) == 0 {
		return errors.SHANotSpecified
	}
	info := &entity.FileInfo{SHA: req.Args[0]}
	if len(req.Args) > 1 {
		info.Path = req.Args[1]
	}
	s, err := h.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	blob, err := s.ctrl.Blob(ctx, info)
	if err != nil {
		return err
	}

	if wantsJSON(req) {
		return printJSON(blob)
	}
	if meta, _ := req.Cmd.Flags().GetBool("meta"); meta {
		matter, err := blob.FrontMatter()
		if err != nil {
			return err
		}
		items := make(map[string]string, len(matter))
		for k, v := range matter {
			items[k] = fmt.Sprint(v)
		}
		fmt.Print(ui.KeyValues(items))
		return nil
	}
	if body, _ := req.Cmd.Flags().GetBool("body"); body {
		fmt.Print(blob.Body())
		return nil
	}
	fmt.Print(blob.Content)
	return nil
}

func (h *Handler) Exists(ctx context.Context, req *entity.CommandRequest) error {
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
	if s.ctrl.Exists(ctx, path) {
		fmt.Printf("%s %s\n", ui.GreenText("✔"), path)
	} else {
		fmt.Printf("%s %s\n", ui.RedText("✘"), path)
	}
	return nil
}

func (h *Handler) Contents(ctx context.Context, req *entity.CommandRequest) error {
	post, err := postQuery(req)
	if err != nil {
		return err
	}
	s, err := h.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	content, err := s.ctrl.RemoteContents(ctx, post)
	if err != nil {
		return err
	}

	if wantsJSON(req) {
		return printJSON(content)
	}
	if !content.IsDir() {
		fmt.Print(content.Content)
		return nil
	}
	names := make([]string, 0, len(content.Entries))
	for _, e := range content.Entries {
		name := e.Name
		if e.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Print(ui.Heading(content.Path + "/"))
	fmt.Print(ui.UnorderedList(names))
	return nil
}

func (h *Handler) List(ctx context.Context, req *entity.CommandRequest) error {
	path := ""
	if len(req.Args) > 0 {
		path = req.Args[0]
	}
	ref, _ := req.Cmd.Flags().GetString("ref")
	s, err := h.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := s.ctrl.ListDirectory(ctx, ref, path)
	if err != nil {
		return err
	}

	if wantsJSON(req) {
		return printJSON(entries)
	}
	for _, e := range entries {
		name := e.Name
		if e.Type == entity.TypeTree {
			name = ui.BlueText(name + "/").String()
		}
		fmt.Printf("%s  %s\n", ui.GrayText(ui.Truncate(e.OID, 10)), name)
	}
	return nil
}
