package constants

// Version is set at build time with -ldflags "-X ...constants.Version=v1.2.3".
var Version = "source"

const (
	ReleaseOwner      = "postsync"
	ReleaseRepository = "cli"
)
