package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/postsync/cli/logging"
	"github.com/postsync/cli/ui"
)

func (h *Handler) Panic(ctx context.Context, panicErr string, stacktrace string, command string, args []string) error {
	logging.S().Errorw("command panicked",
		"command", command,
		"args", args,
		"panic", panicErr,
		"stacktrace", stacktrace,
	)
	_ = logging.Sync()
	fmt.Fprintf(os.Stderr, "%s postsync %s crashed: %s\n", ui.RedText("✘"), command, panicErr)
	fmt.Fprint(os.Stderr, ui.Paragraph("Run again with POSTSYNC_LOG_LEVEL=debug and include the output when reporting this."))
	return nil
}
