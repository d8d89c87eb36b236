package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	role, ok := ParseRole(" Seller ")
	assert.True(t, ok)
	assert.Equal(t, RoleSeller, role)

	_, ok = ParseRole("admin")
	assert.False(t, ok)
}

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"buyer", "BUYER", "merchant", "seller"})

	assert.Equal(t, Roles{RoleBuyer, RoleSeller}, roles)
	assert.Equal(t, []string{"buyer", "seller"}, roles.ToStrings())
	assert.Empty(t, RolesFromStrings(nil))
}

func TestUser_Roles(t *testing.T) {
	assert.Equal(t, Roles{RoleSeller}, (&User{Role: RoleSeller}).Roles())
	assert.Empty(t, (&User{Role: "admin"}).Roles())
	assert.Empty(t, (*User)(nil).Roles())
}
