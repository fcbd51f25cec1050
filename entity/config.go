package entity

// RepoConfig locates the remote repository and how to reach it.
type RepoConfig struct {
	Owner      string `json:"owner"`
	Repository string `json:"repository"`
	Branch     string `json:"branch"`
	Token      string `json:"-"`
	BaseURL    string `json:"baseUrl,omitempty"`
	WebURL     string `json:"webUrl,omitempty"`
}

func (c *RepoConfig) FullName() string {
	return c.Owner + "/" + c.Repository
}

type CacheConfig struct {
	Backend     string
	Dir         string
	DatabaseURL string
	S3          S3Config
}

type S3Config struct {
	Bucket    string
	Prefix    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	PathStyle bool
}

type LogConfig struct {
	Level      string
	Format     string
	OutputPath string
}
