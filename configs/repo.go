package configs

import (
	"os"
	"strings"

	"github.com/postsync/cli/constants"
	"github.com/postsync/cli/entity"
	"github.com/postsync/cli/errors"
)

// ParseRepository splits "owner/repo".
func ParseRepository(fullName string) (string, string, error) {
	parts := strings.Split(strings.TrimSpace(fullName), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.InvalidRepository
	}
	return parts[0], parts[1], nil
}

func (c *Configs) GetRepoConfig() (*entity.RepoConfig, error) {
	fullName := c.get("repository")
	if fullName == "" {
		return nil, errors.RepoConfigNotFound
	}
	owner, repo, err := ParseRepository(fullName)
	if err != nil {
		return nil, err
	}

	return &entity.RepoConfig{
		Owner:      owner,
		Repository: repo,
		Branch:     c.getDefault("branch", constants.DefaultBranch),
		Token:      c.GetToken(),
		BaseURL:    c.get("api_url"),
		WebURL:     c.getDefault("web_url", constants.GitHubWebURL),
	}, nil
}

// SetRepoConfig stores the repository in the project config.
func (c *Configs) SetRepoConfig(cfg *entity.RepoConfig) error {
	v := c.projectConfigs.viper
	v.Set("repository", cfg.FullName())
	v.Set("branch", cfg.Branch)
	if cfg.BaseURL != "" {
		v.Set("api_url", cfg.BaseURL)
	}
	if cfg.WebURL != "" && cfg.WebURL != constants.GitHubWebURL {
		v.Set("web_url", cfg.WebURL)
	}
	return c.saveConfig(c.projectConfigs)
}

// GetToken prefers POSTSYNC_TOKEN, then GITHUB_TOKEN, then the root config.
func (c *Configs) GetToken() string {
	if v := c.env.GetString("token"); v != "" {
		return v
	}
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		return v
	}
	return c.rootConfigs.viper.GetString("token")
}

// SetToken stores the token in the root config so it never lands in a
// project directory.
func (c *Configs) SetToken(token string) error {
	c.rootConfigs.viper.Set("token", token)
	return c.saveConfig(c.rootConfigs)
}
