package constants

const (
	GitHubAPIURL     = "https://api.github.com/"
	GitHubGraphQLURL = "https://api.github.com/graphql"
	GitHubWebURL     = "https://github.com"

	DefaultBranch = "master"
	// RootTree names the tip of the configured branch in tree lookups.
	RootTree = "root"

	ViewURLFormat = "%s/%s/blob/%s/%s"
	EditURLFormat = "%s/%s/edit/%s/%s"
	ViewLinkHTML  = `<a href="%s">View this post on GitHub.</a>`
	EditLinkHTML  = `<a href="%s">Edit this post on GitHub.</a>`

	UserAgent = "postsync-cli"
)

const (
	CacheMemory   = "memory"
	CacheFile     = "file"
	CachePostgres = "postgres"
	CacheS3       = "s3"
	CacheNone     = "none"
)
