package gateway

import (
	"context"
	"fmt"

	gql "github.com/machinebox/graphql"
	"github.com/postsync/cli/entity"
	libgql "github.com/postsync/cli/lib/gql"
)

type dirEntryFields struct {
	Name bool `json:"name"`
	Type bool `json:"type"`
	OID  bool `json:"oid"`
}

// ListDirectory lists one level of the tree at ref:path over GraphQL. A path
// that is not a directory yields no entries.
func (g *Gateway) ListDirectory(ctx context.Context, req *entity.DirectoryRequest) ([]*entity.DirEntry, error) {
	fields, err := libgql.AsGQL(dirEntryFields{Name: true, Type: true, OID: true})
	if err != nil {
		return nil, err
	}
	gqlReq := gql.NewRequest(fmt.Sprintf(`
		query($repoName: String!, $repoOwner: String!, $expression: String!) {
			repository(name: $repoName, owner: $repoOwner) {
				object(expression: $expression) {
					... on Tree {
						entries {
							%s
						}
					}
				}
			}
		}
	`, fields))
	gqlReq.Var("repoName", req.Repository)
	gqlReq.Var("repoOwner", req.Owner)
	gqlReq.Var("expression", req.Expression())

	var resp struct {
		Repository struct {
			Object struct {
				Entries []*entity.DirEntry `json:"entries"`
			} `json:"object"`
		} `json:"repository"`
	}
	if err := g.gqlClient.Run(ctx, gqlReq, &resp); err != nil {
		return nil, err
	}
	return resp.Repository.Object.Entries, nil
}
