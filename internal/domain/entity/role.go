// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"timesheet/internal/errors"
)

// Role represents the access level a team member has in the system.
type Role string

const (
	// RoleAdmin can manage members, clients, projects and categories.
	RoleAdmin Role = "Admin"
	// RoleLead can manage projects they lead.
	RoleLead Role = "Lead"
	// RoleMember can record activities and read shared data.
	RoleMember Role = "Member"
)

// ErrUnknownRole is returned by ParseRole for any value outside the enumeration.
var ErrUnknownRole = errors.New("unknown role")

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleLead, RoleMember:
		return true
	default:
		return false
	}
}

// ParseRole maps a string onto the closed Role enumeration. Matching is
// case-insensitive. Unknown values are rejected with ErrUnknownRole rather
// than falling back to a default role.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, nil
	case "lead":
		return RoleLead, nil
	case "member":
		return RoleMember, nil
	default:
		return "", errors.Wrapf(ErrUnknownRole, "%q", s)
	}
}
