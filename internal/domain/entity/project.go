package entity

import (
	"time"

	"github.com/google/uuid"
)

// Project groups activities for one customer under one responsible lead.
type Project struct {
	ID          uuid.UUID
	Name        string
	Description string
	CustomerID  uuid.UUID
	Customer    *Client // Loaded on reads; nil when only the ID is known.
	LeadID      uuid.UUID
	Lead        *TeamMember
	Status      Status // New projects start as "Inactive".
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
