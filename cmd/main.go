package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/postsync/cli/cache"
	"github.com/postsync/cli/configs"
	"github.com/postsync/cli/controller"
	"github.com/postsync/cli/entity"
	"github.com/postsync/cli/errors"
	"github.com/postsync/cli/gateway"
	"github.com/postsync/cli/logging"
)

type Handler struct {
	cfg *configs.Configs
}

func New() *Handler {
	return &Handler{
		cfg: configs.New(),
	}
}

// session is everything a command needs to talk to the configured
// repository.
type session struct {
	repo  *entity.RepoConfig
	gtwy  *gateway.Gateway
	blobs *cache.Blobs
	ctrl  *controller.Controller
}

func (s *session) Close() {
	if err := s.blobs.Close(); err != nil {
		logging.Warn("closing blob cache", logging.Err(err))
	}
}

func (h *Handler) open(ctx context.Context) (*session, error) {
	repo, err := h.cfg.GetRepoConfig()
	if err != nil {
		return nil, err
	}
	gtwy, err := gateway.New(repo)
	if err != nil {
		return nil, err
	}
	blobs, err := cache.Open(ctx, h.cfg.GetCacheConfig())
	if err != nil {
		return nil, err
	}
	return &session{
		repo:  repo,
		gtwy:  gtwy,
		blobs: blobs,
		ctrl:  controller.New(gtwy, blobs, repo),
	}, nil
}

// Setup runs before every command.
func (h *Handler) Setup(ctx context.Context, req *entity.CommandRequest) error {
	return initLogging(req, h.cfg.GetLogConfig())
}

// initLogging installs the global logger. --verbose wins over the
// configured level.
func initLogging(req *entity.CommandRequest, cfg *entity.LogConfig) error {
	if err := logging.Init(cfg); err != nil {
		return err
	}
	if verbose, _ := req.Cmd.Flags().GetBool("verbose"); verbose {
		logging.SetLevel("debug")
	}
	return nil
}

func wantsJSON(req *entity.CommandRequest) bool {
	asJSON, _ := req.Cmd.Flags().GetBool("json")
	return asJSON
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// postQuery reads a post reference from the first argument or the post
// flags.
func postQuery(req *entity.CommandRequest) (*entity.Post, error) {
	q := &entity.PostQuery{}
	if len(req.Args) > 0 {
		q.Path = req.Args[0]
	}
	flags := req.Cmd.Flags()
	q.Name, _ = flags.GetString("name")
	q.Type, _ = flags.GetString("type")
	q.Status, _ = flags.GetString("status")
	q.Date, _ = flags.GetString("date")
	if q.Path == "" && q.Name == "" {
		return nil, errors.PathNotSpecified
	}
	return q.Post()
}
