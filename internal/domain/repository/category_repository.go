package repository

import (
	"context"

	"timesheet/internal/domain/entity"
	"timesheet/internal/errors"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when no category record matches the lookup.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository persists activity categories.
type CategoryRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// GetAll returns categories passing the filter, ordered by name.
	GetAll(ctx context.Context, filter Filter) ([]*entity.Category, error)

	Create(ctx context.Context, category *entity.Category) error

	Update(ctx context.Context, category *entity.Category) error

	// Delete reports whether a record existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
