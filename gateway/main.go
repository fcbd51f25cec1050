package gateway

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/github"
	gql "github.com/machinebox/graphql"
	"github.com/pkg/errors"
	"github.com/postsync/cli/constants"
	"github.com/postsync/cli/entity"
	"golang.org/x/oauth2"
)

const requestTimeout = time.Second * 30

type Gateway struct {
	repo       *entity.RepoConfig
	httpClient *http.Client
	ghClient   *github.Client
	gqlClient  *gql.Client
}

// New builds a gateway for repo. Requests carry the configured token, if any.
func New(repo *entity.RepoConfig) (*Gateway, error) {
	var base http.RoundTripper = &transport{base: http.DefaultTransport}
	if repo.Token != "" {
		base = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: repo.Token}),
			Base:   base,
		}
	}
	return NewWithHTTPClient(repo, &http.Client{
		Timeout:   requestTimeout,
		Transport: base,
	})
}

func NewWithHTTPClient(repo *entity.RepoConfig, httpClient *http.Client) (*Gateway, error) {
	ghClient := github.NewClient(httpClient)
	ghClient.UserAgent = constants.UserAgent

	graphqlURL := constants.GitHubGraphQLURL
	if repo.BaseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(repo.BaseURL, "/") + "/")
		if err != nil {
			return nil, errors.Wrap(err, "parse api url")
		}
		ghClient.BaseURL = baseURL
		graphqlURL = baseURL.String() + "graphql"
	}

	return &Gateway{
		repo:       repo,
		httpClient: httpClient,
		ghClient:   ghClient,
		gqlClient:  gql.NewClient(graphqlURL, gql.WithHTTPClient(httpClient)),
	}, nil
}

func (g *Gateway) owner() string {
	return g.repo.Owner
}

func (g *Gateway) name() string {
	return g.repo.Repository
}
