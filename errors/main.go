package errors

import (
	"fmt"

	"github.com/postsync/cli/ui"
)

type PostsyncError error

var (
	RepoConfigNotFound     PostsyncError = fmt.Errorf("%s\nRun %s", ui.RedText("No repository configured."), ui.Bold("postsync init"))
	InvalidRepository      PostsyncError = fmt.Errorf("%s Expected the form %s", ui.RedText("Invalid repository."), ui.Bold("owner/repo"))
	TokenNotSet            PostsyncError = fmt.Errorf("%s\nSet %s or run %s", ui.RedText("No forge token configured."), ui.Bold("POSTSYNC_TOKEN"), ui.Bold("postsync init --token <token>"))
	UnknownCacheBackend    PostsyncError = fmt.Errorf("%s Use one of memory, file, postgres, s3 or none.", ui.RedText("Unknown cache backend."))
	CacheDatabaseURLNotSet PostsyncError = fmt.Errorf("%s\nSet %s", ui.RedText("The postgres cache needs a database url."), ui.Bold("POSTSYNC_DATABASE_URL"))
	CacheBucketNotSet      PostsyncError = fmt.Errorf("%s\nSet %s", ui.RedText("The s3 cache needs a bucket."), ui.Bold("POSTSYNC_S3_BUCKET"))
	PathNotSpecified       PostsyncError = fmt.Errorf("%s", ui.RedText("Specify a path inside the repository, or a post with --name."))
	SHANotSpecified        PostsyncError = fmt.Errorf("%s", ui.RedText("Specify a commit or blob sha."))
	PathOutsideDirectory   PostsyncError = fmt.Errorf("%s", ui.RedText("Refusing to write outside of the target directory."))
)
