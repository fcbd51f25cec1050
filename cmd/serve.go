package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/postsync/cli/entity"
	"github.com/postsync/cli/logging"
	"github.com/postsync/cli/server"
)

func (h *Handler) Serve(ctx context.Context, req *entity.CommandRequest) error {
	addr, _ := req.Cmd.Flags().GetString("addr")

	// Servers log JSON unless POSTSYNC_LOG_FORMAT says otherwise.
	logCfg := h.cfg.GetLogConfig()
	if _, ok := os.LookupEnv("POSTSYNC_LOG_FORMAT"); !ok {
		logCfg.Format = "json"
	}
	if err := initLogging(req, logCfg); err != nil {
		return err
	}
	defer logging.Sync()

	s, err := h.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info("serving repository",
		logging.String("repository", s.repo.FullName()),
		logging.String("branch", s.repo.Branch),
		logging.String("cache", s.blobs.Name()),
	)
	return server.New(s.ctrl).ListenAndServe(ctx, addr)
}
