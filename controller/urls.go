package controller

import (
	"fmt"
	"strings"

	"github.com/postsync/cli/constants"
)

func (c *Controller) webURL() string {
	if c.repo.WebURL == "" {
		return constants.GitHubWebURL
	}
	return strings.TrimSuffix(c.repo.WebURL, "/")
}

func (c *Controller) ViewURL(path string) string {
	return fmt.Sprintf(constants.ViewURLFormat, c.webURL(), c.repo.FullName(), c.branch(), strings.TrimPrefix(path, "/"))
}

func (c *Controller) EditURL(path string) string {
	return fmt.Sprintf(constants.EditURLFormat, c.webURL(), c.repo.FullName(), c.branch(), strings.TrimPrefix(path, "/"))
}

func (c *Controller) ViewLink(path string) string {
	return fmt.Sprintf(constants.ViewLinkHTML, c.ViewURL(path))
}

func (c *Controller) EditLink(path string) string {
	return fmt.Sprintf(constants.EditLinkHTML, c.EditURL(path))
}
