package entity

import "regexp"

var shaPattern = regexp.MustCompile(`^[0-9a-f]{1,64}$`)

// IsSHA reports whether s looks like a lowercase hex object id.
func IsSHA(s string) bool {
	return shaPattern.MatchString(s)
}

// Compare statuses reported by the forge. Entries listed from a tree carry an
// empty status.
const (
	StatusAdded    = "added"
	StatusModified = "modified"
	StatusRemoved  = "removed"
	StatusRenamed  = "renamed"
)

// FileInfo identifies a file in the remote repository by blob sha and path.
type FileInfo struct {
	SHA    string `json:"sha"`
	Path   string `json:"path"`
	Status string `json:"status"`
}

// CommitFile is a file record as returned by the compare endpoint.
type CommitFile struct {
	SHA       string `json:"sha"`
	Filename  string `json:"filename"`
	Status    string `json:"status"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}
