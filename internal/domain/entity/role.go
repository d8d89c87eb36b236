// Package entity contains the core business objects of the marketplace.
package entity

import (
	"slices"
	"strings"
)

// Role is the single kind of account a user registered as.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is a role accounts can be registered with.
func (r Role) IsValid() bool {
	return r == RoleBuyer || r == RoleSeller
}

// ParseRole reads a role claim, ignoring case and surrounding blanks.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))

	return role, role.IsValid()
}

// Roles is the set of roles carried by an access token.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings renders the roles as access token claims.
func (rs Roles) ToStrings() []string {
	claims := make([]string, 0, len(rs))
	for _, r := range rs {
		claims = append(claims, r.String())
	}

	return claims
}

// RolesFromStrings reads token claims back into roles. Unknown claims
// are dropped and each role appears once.
func RolesFromStrings(claims []string) Roles {
	roles := make(Roles, 0, len(claims))
	for _, claim := range claims {
		if role, ok := ParseRole(claim); ok && !roles.Contains(role) {
			roles = append(roles, role)
		}
	}

	return roles
}
