package repository

import (
	"context"

	"timesheet/internal/domain/entity"
	"timesheet/internal/errors"

	"github.com/google/uuid"
)

// ErrClientNotFound is returned when no client record matches the lookup.
var ErrClientNotFound = errors.New("client not found")

// ClientRepository persists customer records.
type ClientRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// GetAll returns clients passing the filter, ordered by name.
	GetAll(ctx context.Context, filter Filter) ([]*entity.Client, error)

	Create(ctx context.Context, client *entity.Client) error

	Update(ctx context.Context, client *entity.Client) error

	// Delete reports whether a record existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
