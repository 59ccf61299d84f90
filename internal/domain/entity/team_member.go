// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Status label values used across team members and projects.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Status is a reference record carrying a human-readable state label.
type Status struct {
	ID   uuid.UUID // The unique ID of the status record.
	Name string    // The human-readable label, e.g. "Active" or "Inactive".
}

// TeamMember is the credential subject of the system: the persisted account
// holding identity, credentials and role.
//
// Username and Email are each globally unique. Uniqueness comparison is
// exact-match and case-sensitive; callers are expected to normalize input
// before registration if they want a looser policy.
type TeamMember struct {
	ID             uuid.UUID // Generated by the storage layer at creation, immutable afterwards.
	Name           string    // The member's display name.
	Username       string    // Unique login handle.
	Email          string    // Unique contact email, used as the login identifier.
	PasswordDigest []byte    // Fixed-length keyed hash of the password. Never logged.
	PasswordSalt   []byte    // Per-member random key, generated once at registration.
	Role           Role      // Closed enumeration, see role.go.
	Status         Status    // New registrations start as "Active".
	HoursPerWeek   float64   // Contracted weekly hours.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
