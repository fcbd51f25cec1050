package controller

import (
	"context"
	"path"
	"path/filepath"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"
	"github.com/postsync/cli/entity"
	"github.com/postsync/cli/errors"
	"github.com/postsync/cli/lib/atomic"
	"github.com/postsync/cli/logging"
	"github.com/postsync/cli/metrics"
)

// Pull writes every blob of the tree at req.SHA below req.Dir. Paths matched
// by req.Ignore are skipped and blobs that cannot be fetched are reported in
// Failed. Only local write errors abort the pull.
func (c *Controller) Pull(ctx context.Context, req *entity.PullRequest) (*entity.PullResult, error) {
	infos, err := c.TreeRecursive(ctx, req.SHA)
	if err != nil {
		return nil, err
	}

	root, err := filepath.Abs(req.Dir)
	if err != nil {
		return nil, err
	}
	ignore := newIgnoreMatcher(req.Ignore)
	logger := logging.WithContext(ctx)

	result := &entity.PullResult{}
	for _, info := range infos {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if req.Progress != nil {
			req.Progress(info.Path, len(infos))
		}

		if isIgnored(ignore, info.Path) {
			result.Ignored = append(result.Ignored, info.Path)
			continue
		}

		target, err := localPath(root, info.Path)
		if err != nil {
			logger.Warn("refusing path", logging.String("path", info.Path))
			result.Failed = append(result.Failed, info.Path)
			continue
		}

		blob, err := c.Blob(ctx, info)
		if err != nil {
			logger.Warn("skipping blob",
				logging.String("sha", info.SHA),
				logging.String("path", info.Path),
				logging.Err(err),
			)
			result.Failed = append(result.Failed, info.Path)
			continue
		}

		if err := atomic.WriteFile(target, []byte(blob.Content), 0o644); err != nil {
			return result, err
		}
		metrics.RecordBlobWritten()
		result.Written = append(result.Written, info.Path)
	}
	return result, nil
}

func newIgnoreMatcher(patterns []string) gitignore.IgnoreMatcher {
	if len(patterns) == 0 {
		return gitignore.DummyIgnoreMatcher(false)
	}
	return gitignore.NewGitIgnoreFromReader(".", strings.NewReader(strings.Join(patterns, "\n")))
}

// isIgnored matches p and each of its parent directories, the way a
// walker over the checkout would.
func isIgnored(ignore gitignore.IgnoreMatcher, p string) bool {
	parts := strings.Split(p, "/")
	for i := 1; i < len(parts); i++ {
		if ignore.Match(path.Join(parts[:i]...), true) {
			return true
		}
	}
	return ignore.Match(p, false)
}

// localPath maps a repository path below root.
func localPath(root string, p string) (string, error) {
	target := filepath.Join(root, filepath.FromSlash(p))
	rel, err := filepath.Rel(root, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.PathOutsideDirectory
	}
	return target, nil
}
