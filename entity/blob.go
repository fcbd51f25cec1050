package entity

import (
	"encoding/base64"
	"strings"

	"gopkg.in/yaml.v2"
)

const frontMatterDelimiter = "---"

// Blob is the raw content of one file. Content is always decoded.
type Blob struct {
	SHA      string `json:"sha"`
	Path     string `json:"path"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
	Size     int64  `json:"size"`
}

// DecodeContent decodes content as returned by the forge for the given
// encoding. Unknown encodings are returned as is.
func DecodeContent(encoding string, content string) (string, error) {
	if encoding != "base64" {
		return content, nil
	}
	// The forge wraps base64 payloads at 60 columns.
	raw, err := base64.StdEncoding.DecodeString(strings.NewReplacer("\n", "", "\r", "").Replace(content))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// HasFrontMatter reports whether the first line of the content is exactly
// "---".
func (b *Blob) HasFrontMatter() bool {
	return b.Content == frontMatterDelimiter ||
		strings.HasPrefix(b.Content, frontMatterDelimiter+"\n") ||
		strings.HasPrefix(b.Content, frontMatterDelimiter+"\r\n")
}

// FrontMatter decodes the YAML block between the opening and closing "---"
// lines. A blob without front matter yields an empty map.
func (b *Blob) FrontMatter() (map[string]interface{}, error) {
	meta := map[string]interface{}{}
	raw, _, ok := b.split()
	if !ok {
		return meta, nil
	}
	if err := yaml.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// Body returns the content with any front matter removed.
func (b *Blob) Body() string {
	_, body, _ := b.split()
	return body
}

func (b *Blob) split() (string, string, bool) {
	if !b.HasFrontMatter() {
		return "", b.Content, false
	}
	rest := b.Content[len(frontMatterDelimiter):]
	end := strings.Index(rest, "\n"+frontMatterDelimiter)
	if end < 0 {
		return "", b.Content, false
	}
	meta := strings.ReplaceAll(rest[:end], "\r", "")
	body := rest[end+1+len(frontMatterDelimiter):]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 && strings.TrimSpace(body[:nl]) == "" {
		body = body[nl+1:]
	} else if strings.TrimSpace(body) == "" {
		body = ""
	}
	return meta, body, true
}
