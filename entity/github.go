package entity

/* DirectoryRequest defines the format for GQL queries against the forge
   - Ref: A branch, tag or commit sha
   - Path: Directory inside the repository, "" for the root
*/
type DirectoryRequest struct {
	Owner      string
	Repository string
	Ref        string
	Path       string
}

// Expression is the "<ref>:<path>" object expression understood by the
// GraphQL API.
func (r *DirectoryRequest) Expression() string {
	return r.Ref + ":" + r.Path
}

type DirEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
	OID  string `json:"oid"`
}
