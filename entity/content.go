package entity

// Content is a response of the contents API. Entries is set when Path
// names a directory.
type Content struct {
	Type     string     `json:"type"`
	Name     string     `json:"name"`
	Path     string     `json:"path"`
	SHA      string     `json:"sha"`
	Size     int64      `json:"size"`
	Encoding string     `json:"encoding,omitempty"`
	Content  string     `json:"content,omitempty"`
	HTMLURL  string     `json:"html_url,omitempty"`
	Entries  []*Content `json:"entries,omitempty"`
}

func (c *Content) IsDir() bool {
	return c.Type == "dir"
}
