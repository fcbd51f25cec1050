package configs

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "POSTSYNC"

type Config struct {
	viper      *viper.Viper
	configPath string
}

// Configs resolves settings from, in order of precedence, POSTSYNC_*
// environment variables, the project config (./.postsync/config.json) and
// the root config (~/.postsync/config.json).
type Configs struct {
	projectConfigs *Config
	rootConfigs    *Config
	env            *viper.Viper
}

func IsDevMode() bool {
	environment, exists := os.LookupEnv("POSTSYNC_ENV")
	return exists && environment == "develop"
}

func (c *Configs) CreatePathIfNotExist(path string) error {
	dir := filepath.Dir(path)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err = os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Configs) saveConfig(config *Config) error {
	err := c.CreatePathIfNotExist(config.configPath)
	if err != nil {
		return err
	}

	return config.viper.WriteConfigAs(config.configPath)
}

// get returns the first non-empty value for key across env, project and root.
func (c *Configs) get(key string) string {
	if v := c.env.GetString(key); v != "" {
		return v
	}
	if v := c.projectConfigs.viper.GetString(key); v != "" {
		return v
	}
	return c.rootConfigs.viper.GetString(key)
}

func (c *Configs) getDefault(key string, def string) string {
	if v := c.get(key); v != "" {
		return v
	}
	return def
}

func newConfig(configPath string) *Config {
	v := viper.New()
	v.SetConfigFile(configPath)
	// A missing file is an empty config.
	_ = v.ReadInConfig()
	return &Config{
		viper:      v,
		configPath: configPath,
	}
}

// NewFromPaths builds Configs over explicit config files. Environment
// variables still apply.
func NewFromPaths(rootPath string, projectPath string) *Configs {
	env := viper.New()
	env.SetEnvPrefix(envPrefix)
	env.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	env.AutomaticEnv()

	return &Configs{
		projectConfigs: newConfig(projectPath),
		rootConfigs:    newConfig(rootPath),
		env:            env,
	}
}

func New() *Configs {
	// Values from .env never override variables already set.
	_ = godotenv.Load()

	// Project configs live next to the content (<project>/.postsync)
	projectDir, err := filepath.Abs("./.postsync")
	if err != nil {
		panic(err)
	}
	projectPath := path.Join(projectDir, "config.json")

	// Root configs live in ~/.postsync and carry the token
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	rootPath := path.Join(home, ".postsync", "config.json")

	return NewFromPaths(rootPath, projectPath)
}
