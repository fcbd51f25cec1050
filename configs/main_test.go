package configs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/postsync/cli/configs"
	"github.com/postsync/cli/constants"
	"github.com/postsync/cli/entity"
	"github.com/postsync/cli/errors"
	"github.com/stretchr/testify/require"
)

func newConfigs(t *testing.T) (*configs.Configs, string, string) {
	dir := t.TempDir()
	rootPath := filepath.Join(dir, "home", ".postsync", "config.json")
	projectPath := filepath.Join(dir, "project", ".postsync", "config.json")
	return configs.NewFromPaths(rootPath, projectPath), rootPath, projectPath
}

func writeFile(t *testing.T, path string, content string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestParseRepository(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		owner string
		repo  string
		err   error
	}{
		{name: "Owner and repository", in: "octo/blog", owner: "octo", repo: "blog"},
		{name: "Surrounding space is ignored", in: " octo/blog\n", owner: "octo", repo: "blog"},
		{name: "Missing owner", in: "/blog", err: errors.InvalidRepository},
		{name: "Missing slash", in: "blog", err: errors.InvalidRepository},
		{name: "Too many parts", in: "octo/blog/extra", err: errors.InvalidRepository},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := configs.ParseRepository(tt.in)
			if tt.err != nil {
				require.Equal(t, tt.err, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.owner, owner)
			require.Equal(t, tt.repo, repo)
		})
	}
}

func TestGetRepoConfigMissing(t *testing.T) {
	t.Setenv("POSTSYNC_REPOSITORY", "")
	cfg, _, _ := newConfigs(t)

	_, err := cfg.GetRepoConfig()
	require.Equal(t, errors.RepoConfigNotFound, err)
}

func TestRepoConfigRoundTrip(t *testing.T) {
	t.Setenv("POSTSYNC_REPOSITORY", "")
	t.Setenv("POSTSYNC_BRANCH", "")
	cfg, rootPath, projectPath := newConfigs(t)

	require.NoError(t, cfg.SetRepoConfig(&entity.RepoConfig{
		Owner:      "octo",
		Repository: "blog",
		Branch:     "main",
	}))
	require.FileExists(t, projectPath)
	require.NoFileExists(t, rootPath)

	reloaded := configs.NewFromPaths(rootPath, projectPath)
	repo, err := reloaded.GetRepoConfig()
	require.NoError(t, err)
	require.Equal(t, "octo", repo.Owner)
	require.Equal(t, "blog", repo.Repository)
	require.Equal(t, "main", repo.Branch)
	require.Equal(t, constants.GitHubWebURL, repo.WebURL)
}

func TestPrecedence(t *testing.T) {
	t.Setenv("POSTSYNC_BRANCH", "")
	cfg, rootPath, projectPath := newConfigs(t)
	writeFile(t, rootPath, `{"repository": "root/repo", "branch": "gh-pages", "token": "root-token"}`)
	writeFile(t, projectPath, `{"repository": "project/repo"}`)

	t.Run("Project overrides root", func(t *testing.T) {
		t.Setenv("POSTSYNC_REPOSITORY", "")
		cfg = configs.NewFromPaths(rootPath, projectPath)
		repo, err := cfg.GetRepoConfig()
		require.NoError(t, err)
		require.Equal(t, "project/repo", repo.FullName())
		require.Equal(t, "gh-pages", repo.Branch)
	})

	t.Run("Environment overrides files", func(t *testing.T) {
		t.Setenv("POSTSYNC_REPOSITORY", "env/repo")
		repo, err := cfg.GetRepoConfig()
		require.NoError(t, err)
		require.Equal(t, "env/repo", repo.FullName())
	})

	t.Run("Token falls back to GITHUB_TOKEN then root config", func(t *testing.T) {
		t.Setenv("POSTSYNC_TOKEN", "")
		t.Setenv("GITHUB_TOKEN", "")
		require.Equal(t, "root-token", cfg.GetToken())

		t.Setenv("GITHUB_TOKEN", "gh-token")
		require.Equal(t, "gh-token", cfg.GetToken())

		t.Setenv("POSTSYNC_TOKEN", "ps-token")
		require.Equal(t, "ps-token", cfg.GetToken())
	})
}

func TestSetTokenWritesRootConfig(t *testing.T) {
	t.Setenv("POSTSYNC_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "")
	cfg, rootPath, projectPath := newConfigs(t)

	require.NoError(t, cfg.SetToken("secret"))
	require.FileExists(t, rootPath)
	require.NoFileExists(t, projectPath)
	require.Equal(t, "secret", configs.NewFromPaths(rootPath, projectPath).GetToken())
}

func TestGetCacheConfig(t *testing.T) {
	t.Setenv("POSTSYNC_CACHE", "s3")
	t.Setenv("POSTSYNC_S3_BUCKET", "blobs")
	t.Setenv("POSTSYNC_S3_PATH_STYLE", "true")
	t.Setenv("POSTSYNC_CACHE_DIR", "")
	cfg, _, _ := newConfigs(t)

	cache := cfg.GetCacheConfig()
	require.Equal(t, constants.CacheS3, cache.Backend)
	require.Equal(t, "blobs", cache.S3.Bucket)
	require.True(t, cache.S3.PathStyle)
	require.Equal(t, "blobs/", cache.S3.Prefix)
	require.NotEmpty(t, cache.Dir)
}

func TestDefaultCacheDirFollowsUserCacheDir(t *testing.T) {
	t.Setenv("POSTSYNC_CACHE_DIR", "")
	t.Setenv("XDG_CACHE_HOME", filepath.Join(t.TempDir(), "xdg"))
	userDir, err := os.UserCacheDir()
	require.NoError(t, err)

	cfg, _, _ := newConfigs(t)
	require.Equal(t, filepath.Join(userDir, "postsync", "blobs"), cfg.GetCacheConfig().Dir)
}
