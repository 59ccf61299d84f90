package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		input string
		want  Role
	}{
		{"Admin", RoleAdmin},
		{"admin", RoleAdmin},
		{"ADMIN", RoleAdmin},
		{" lead ", RoleLead},
		{"Member", RoleMember},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			role, err := ParseRole(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, role)
		})
	}
}

func TestParseRole_RejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "root", "Administrator", "member2"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseRole(input)
			assert.ErrorIs(t, err, ErrUnknownRole)
		})
	}
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleLead.IsValid())
	assert.True(t, RoleMember.IsValid())
	assert.False(t, Role("Root").IsValid())
	assert.False(t, Role("").IsValid())
}
