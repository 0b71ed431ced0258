package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"student", RoleStudent},
		{"tutor", RoleTutor},
		{"admin", RoleAdmin},
		{"  Student ", RoleStudent},
		{"ADMIN", RoleAdmin},
		{"superuser", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseRole(tc.in), "input %q", tc.in)
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleTutor.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("root").Valid())
}

func TestSessionHasRole(t *testing.T) {
	student := &Session{Role: RoleStudent}

	assert.True(t, student.HasRole(RoleStudent))
	assert.True(t, student.HasRole(RoleAdmin, RoleStudent))
	assert.False(t, student.HasRole(RoleAdmin))
	assert.True(t, student.HasRole(), "empty allow-list admits any session")

	var nilSess *Session
	assert.False(t, nilSess.HasRole())
	assert.False(t, nilSess.HasRole(RoleStudent))
}

func TestNavForRoleCopies(t *testing.T) {
	a := NavForRole(RoleStudent)
	a.Items[0].Badge = 9

	b := NavForRole(RoleStudent)
	assert.Zero(t, b.Items[0].Badge, "badge decoration must not leak between requests")
}
