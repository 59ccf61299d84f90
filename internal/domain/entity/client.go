package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client is a customer the team bills work against.
type Client struct {
	ID         uuid.UUID
	Name       string
	Address    string
	City       string
	PostalCode string
	Country    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
