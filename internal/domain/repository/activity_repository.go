package repository

import (
	"context"
	"time"

	"timesheet/internal/domain/entity"
	"timesheet/internal/errors"

	"github.com/google/uuid"
)

// ErrActivityNotFound is returned when no activity record matches the lookup.
var ErrActivityNotFound = errors.New("activity not found")

// ActivityFilter narrows activity queries. Zero-value fields are ignored.
type ActivityFilter struct {
	TeamMemberID uuid.UUID
	ClientID     uuid.UUID
	ProjectID    uuid.UUID
	CategoryID   uuid.UUID
	From         time.Time
	To           time.Time
}

// ActivityRepository persists recorded work entries.
type ActivityRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)

	// GetAll returns activities passing the filter, ordered by date then ID.
	GetAll(ctx context.Context, filter ActivityFilter) ([]*entity.Activity, error)

	Create(ctx context.Context, activity *entity.Activity) error

	Update(ctx context.Context, activity *entity.Activity) error

	// Delete reports whether a record existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
