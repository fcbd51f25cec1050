package configs

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/postsync/cli/constants"
	"github.com/postsync/cli/entity"
)

func (c *Configs) GetCacheConfig() *entity.CacheConfig {
	pathStyle, _ := strconv.ParseBool(c.get("s3_path_style"))
	return &entity.CacheConfig{
		Backend:     c.getDefault("cache", constants.CacheFile),
		Dir:         c.getDefault("cache_dir", defaultCacheDir()),
		DatabaseURL: c.get("database_url"),
		S3: entity.S3Config{
			Bucket:    c.get("s3_bucket"),
			Prefix:    c.getDefault("s3_prefix", "blobs/"),
			Region:    c.getDefault("s3_region", "us-east-1"),
			Endpoint:  c.get("s3_endpoint"),
			AccessKey: c.get("s3_access_key"),
			SecretKey: c.get("s3_secret_key"),
			PathStyle: pathStyle,
		},
	}
}

func (c *Configs) GetLogConfig() *entity.LogConfig {
	level := c.getDefault("log_level", "info")
	if IsDevMode() {
		level = "debug"
	}
	return &entity.LogConfig{
		Level:      level,
		Format:     c.getDefault("log_format", "console"),
		OutputPath: c.get("log_output"),
	}
}

func defaultCacheDir() string {
	return filepath.Join(userCacheDir(), "postsync", "blobs")
}

func userCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return dir
	}
	return os.TempDir()
}
