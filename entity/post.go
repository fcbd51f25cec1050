package entity

import (
	"errors"
	"strings"
	"time"
)

const (
	PostStatusPublish = "publish"
	PostStatusDraft   = "draft"

	PostTypePost = "post"
	PostTypePage = "page"
)

// Post is the subset of a CMS record needed to locate it in the repository.
type Post struct {
	ID     int64     `json:"id"`
	Name   string    `json:"name"`
	Type   string    `json:"type"`
	Status string    `json:"status"`
	Date   time.Time `json:"date"`
	// Path overrides the derived location, e.g. for posts imported from the
	// repository under a custom name.
	Path string `json:"path,omitempty"`
}

func (p *Post) GitHubDirectory() string {
	if p.Status != PostStatusPublish {
		return "_drafts/"
	}
	switch p.Type {
	case PostTypePost:
		return "_posts/"
	case PostTypePage:
		return "_pages/"
	default:
		return "_" + strings.ToLower(p.Type) + "s/"
	}
}

func (p *Post) GitHubFilename() string {
	if p.Type == PostTypePost {
		return p.Date.Format("2006-01-02") + "-" + p.Name + ".md"
	}
	return p.Name + ".md"
}

func (p *Post) GitHubPath() string {
	if p.Path != "" {
		return p.Path
	}
	return p.GitHubDirectory() + p.GitHubFilename()
}

var (
	ErrPostNameMissing = errors.New("path or name is required")
	ErrPostDateMissing = errors.New("date is required for posts")
	ErrPostDateInvalid = errors.New("date must be YYYY-MM-DD")
)

// PostQuery is a post reference as given on the command line or in a query
// string: either a Path, or the fields a path is derived from.
type PostQuery struct {
	Path   string
	Name   string
	Type   string
	Status string
	Date   string
}

// Post resolves q. Type defaults to post and Status to publish.
func (q *PostQuery) Post() (*Post, error) {
	post := &Post{
		Path:   q.Path,
		Name:   q.Name,
		Type:   q.Type,
		Status: q.Status,
	}
	if post.Path != "" {
		return post, nil
	}
	if post.Name == "" {
		return nil, ErrPostNameMissing
	}
	if post.Type == "" {
		post.Type = PostTypePost
	}
	if post.Status == "" {
		post.Status = PostStatusPublish
	}
	if q.Date != "" {
		parsed, err := time.Parse("2006-01-02", q.Date)
		if err != nil {
			return nil, ErrPostDateInvalid
		}
		post.Date = parsed
	} else if post.Type == PostTypePost {
		return nil, ErrPostDateMissing
	}
	return post, nil
}
