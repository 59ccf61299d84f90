package entity

import "github.com/google/uuid"

// Category classifies an activity, e.g. "Development" or "Design".
type Category struct {
	ID   uuid.UUID
	Name string
}
