package uuid_test

import (
	"testing"

	"github.com/postsync/cli/uuid"
	"github.com/stretchr/testify/require"
)

func TestIsValidUUID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  bool
	}{
		{name: "Generated ids are valid", in: uuid.New(), out: true},
		{name: "Canonical form is valid", in: "6ba7b810-9dad-11d1-80b4-00c04fd430c8", out: true},
		{name: "Empty string is invalid", in: "", out: false},
		{name: "Garbage is invalid", in: "not-a-request-id", out: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, uuid.IsValidUUID(tt.in))
		})
	}
}

func TestOrNew(t *testing.T) {
	require.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", uuid.OrNew("6BA7B810-9DAD-11D1-80B4-00C04FD430C8"))

	generated := uuid.OrNew("not-a-request-id")
	require.True(t, uuid.IsValidUUID(generated))
	require.NotEqual(t, generated, uuid.OrNew(""))
}
