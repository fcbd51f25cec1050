package git

type CommitInfo struct {
	Hash    string
	Message string
	Author  string
}

// GitMetadata describes a local checkout. RepoName is "owner/repo" parsed
// from RemoteURL.
type GitMetadata struct {
	IsRepo          bool
	Root            string
	RemoteURL       string
	RepoName        string
	Branch          string
	Commit          CommitInfo
	HasLocalChanges bool
}
