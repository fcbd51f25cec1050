package git

import (
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/pkg/errors"
)

const remoteRegex = `(?:(?:.*?\@.*?\..*?\:)|(?:https?\:\/\/.*?\..*?\/))(?P<User>.*?)\/(?P<Repo>.*?)\.git`

/**
 * Parses url with the given regular expression and returns the
 * group values defined in the expression.
 * https://stackoverflow.com/a/39635221
 */
func getParams(regEx, test string) (paramsMap map[string]string) {

	var compRegEx = regexp.MustCompile(regEx)
	match := compRegEx.FindStringSubmatch(test)

	paramsMap = make(map[string]string)
	for i, name := range compRegEx.SubexpNames() {
		if i > 0 && i < len(match) {
			paramsMap[name] = match[i]
		}
	}
	return paramsMap
}

// ParseRemote extracts "owner/repo" from an ssh or https remote url.
func ParseRemote(remoteURL string) (string, bool) {
	remoteURL = strings.TrimSpace(remoteURL)
	if !strings.HasSuffix(remoteURL, ".git") {
		remoteURL += ".git"
	}
	match := getParams(remoteRegex, remoteURL)
	if match["User"] == "" || match["Repo"] == "" {
		return "", false
	}
	return match["User"] + "/" + match["Repo"], true
}

func open(path string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
}

func IsRepo(path string) bool {
	_, err := open(path)
	return err == nil
}

func originURLs(repo *git.Repository) ([]string, error) {
	remote, err := repo.Remote("origin")
	if err != nil {
		return nil, errors.Wrap(err, "origin remote")
	}
	return remote.Config().URLs, nil
}

// RepoName returns "owner/repo" of the origin remote.
func RepoName(path string) (string, error) {
	repo, err := open(path)
	if err != nil {
		return "", err
	}
	urls, err := originURLs(repo)
	if err != nil {
		return "", err
	}
	for _, u := range urls {
		if name, ok := ParseRemote(u); ok {
			return name, nil
		}
	}
	return "", errors.Errorf("origin remote %v is not a forge url", urls)
}

func GetBranch(path string) (string, error) {
	repo, err := open(path)
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", err
	}
	if !head.Name().IsBranch() {
		return "", errors.New("HEAD is detached")
	}
	return head.Name().Short(), nil
}

func GetCommit(path string) (CommitInfo, error) {
	repo, err := open(path)
	if err != nil {
		return CommitInfo{}, err
	}
	head, err := repo.Head()
	if err != nil {
		return CommitInfo{}, err
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return CommitInfo{}, err
	}
	return CommitInfo{
		Hash:    commit.Hash.String(),
		Message: strings.TrimSpace(commit.Message),
		Author:  commit.Author.Name + " <" + commit.Author.Email + ">",
	}, nil
}

// GetAllMetadata collects what is known about the checkout at path. Missing
// pieces are left empty; only a missing repository is an error.
func GetAllMetadata(path string) (GitMetadata, error) {
	repo, err := open(path)
	if err != nil {
		return GitMetadata{IsRepo: false}, err
	}

	meta := GitMetadata{IsRepo: true}
	if urls, err := originURLs(repo); err == nil && len(urls) > 0 {
		meta.RemoteURL = urls[0]
	}
	meta.RepoName, _ = RepoName(path)
	meta.Branch, _ = GetBranch(path)
	meta.Commit, _ = GetCommit(path)

	if wt, err := repo.Worktree(); err == nil {
		meta.Root = wt.Filesystem.Root()
		if status, err := wt.Status(); err == nil {
			meta.HasLocalChanges = !status.IsClean()
		}
	}
	return meta, nil
}
