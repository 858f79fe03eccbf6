package models

import (
	"fmt"
	"strings"
)

// Role is the closed set of user roles. There is no implied hierarchy: every
// endpoint lists the roles it accepts.
type Role string

const (
	RoleOwner    Role = "OWNER"
	RoleAdmin    Role = "ADMIN"
	RoleAdvocate Role = "ADVOCATE"
	RoleStaff    Role = "STAFF"
	RoleClient   Role = "CLIENT"
)

var allRoles = []Role{RoleOwner, RoleAdmin, RoleAdvocate, RoleStaff, RoleClient}

// ParseRole accepts a role name in any letter case.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if r.Valid() {
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Valid() bool {
	for _, known := range allRoles {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }

// Roles returns a copy of the closed role set.
func Roles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}
