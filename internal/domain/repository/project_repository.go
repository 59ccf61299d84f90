package repository

import (
	"context"

	"timesheet/internal/domain/entity"
	"timesheet/internal/errors"

	"github.com/google/uuid"
)

// ErrProjectNotFound is returned when no project record matches the lookup.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository persists projects together with their customer, lead and
// status references.
type ProjectRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// GetAll returns projects passing the filter, ordered by name.
	GetAll(ctx context.Context, filter Filter) ([]*entity.Project, error)

	// GetByStatus returns projects whose status carries the given label.
	GetByStatus(ctx context.Context, status string) ([]*entity.Project, error)

	Create(ctx context.Context, project *entity.Project) error

	Update(ctx context.Context, project *entity.Project) error

	// Delete reports whether a record existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
