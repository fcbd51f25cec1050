package entity_test

import (
	"testing"

	"github.com/postsync/cli/entity"
	"github.com/stretchr/testify/require"
)

func TestIsSHA(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  bool
	}{
		{name: "Full sha", in: "3b18e512dba79e4c8300dd08aeb37f8e728b8dad", out: true},
		{name: "Abbreviated sha", in: "3b18e5", out: true},
		{name: "Empty", in: "", out: false},
		{name: "Upper case", in: "3B18E5", out: false},
		{name: "Parent directory", in: "../x/evil", out: false},
		{name: "Embedded slash", in: "ab/cd", out: false},
		{name: "Too long", in: "3b18e512dba79e4c8300dd08aeb37f8e728b8dad3b18e512dba79e4c8300dd08aeb3", out: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, entity.IsSHA(tt.in))
		})
	}
}
