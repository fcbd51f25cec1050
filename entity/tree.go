package entity

const (
	TypeBlob   = "blob"
	TypeTree   = "tree"
	TypeCommit = "commit"
)

type TreeEntry struct {
	SHA  string `json:"sha"`
	Path string `json:"path"`
	Type string `json:"type"`
	Mode string `json:"mode"`
	Size int64  `json:"size"`
}

func (e *TreeEntry) IsBlob() bool {
	return e.Type == TypeBlob
}
