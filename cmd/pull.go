package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/postsync/cli/entity"
	"github.com/postsync/cli/ui"
)

// readIgnoreFile returns the patterns of a gitignore-style file. A missing
// file has no patterns.
func readIgnoreFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "open ignore file")
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns, errors.Wrap(scanner.Err(), "read ignore file")
}

func (h *Handler) Pull(ctx context.Context, req *entity.CommandRequest) error {
	sha := ""
	if len(req.Args) > 0 {
		sha = req.Args[0]
	}
	flags := req.Cmd.Flags()
	dir, _ := flags.GetString("dir")
	ignore, _ := flags.GetStringSlice("ignore")
	ignoreFile, _ := flags.GetString("ignore-file")

	filePatterns, err := readIgnoreFile(ignoreFile)
	if err != nil {
		return err
	}
	ignore = append(filePatterns, ignore...)

	s, err := h.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	ui.StartSpinner(&ui.SpinnerCfg{Message: "Reading tree", Tokens: ui.Arrows})
	spinning := true
	var progress *ui.Progress
	result, err := s.ctrl.Pull(ctx, &entity.PullRequest{
		SHA:    sha,
		Dir:    dir,
		Ignore: ignore,
		Progress: func(_ string, total int) {
			if progress == nil {
				ui.StopSpinner("")
				spinning = false
				progress = ui.StartProgress("Pulling", total)
			}
			progress.Increment()
		},
	})
	if spinning {
		ui.StopSpinner("")
	}
	if progress != nil {
		progress.Finish()
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s Wrote %d files to %s (%d ignored)\n", ui.GreenText("✔"), len(result.Written), dir, len(result.Ignored))
	if len(result.Failed) > 0 {
		fmt.Print(ui.AlertWarning(fmt.Sprintf("%d files could not be fetched:", len(result.Failed))))
		fmt.Print(ui.PrefixLines(ui.OrderedList(result.Failed), "  "))
	}
	return nil
}
