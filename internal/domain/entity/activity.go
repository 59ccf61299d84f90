package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a single block of recorded work: who worked, for which client
// and project, under which category, on which day and for how long.
type Activity struct {
	ID           uuid.UUID
	TeamMemberID uuid.UUID
	TeamMember   *TeamMember
	ClientID     uuid.UUID
	Client       *Client
	ProjectID    uuid.UUID
	Project      *Project
	CategoryID   uuid.UUID
	Category     *Category
	Date         time.Time
	Hours        float64
	Overtime     float64 // Zero when no overtime was recorded.
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
