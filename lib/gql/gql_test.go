package gql_test

import (
	"testing"

	"github.com/postsync/cli/lib/gql"
	"github.com/stretchr/testify/require"
)

func TestAsGQL(t *testing.T) {
	type fields struct {
		Name bool `json:"name"`
		Type bool `json:"type"`
		OID  bool `json:"oid"`
		Mode bool `json:"mode"`
	}

	out, err := gql.AsGQL(fields{Name: true, Type: true, OID: true})
	require.NoError(t, err)
	require.Equal(t, "name\noid\ntype", out)

	out, err = gql.AsGQL(fields{})
	require.NoError(t, err)
	require.Equal(t, "", out)

	_, err = gql.AsGQL(struct{ Name string }{Name: "x"})
	require.Error(t, err)
}
