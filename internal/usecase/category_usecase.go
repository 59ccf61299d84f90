package usecase

import (
	"context"

	"timesheet/internal/domain/entity"
	"timesheet/internal/domain/pagination"

	"github.com/google/uuid"
)

// CategoryInput defines the data for creating or updating a category.
type CategoryInput struct {
	ID   uuid.UUID
	Name string
}

// CategoryUsecase defines CRUD operations on activity categories.
type CategoryUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	List(ctx context.Context, input ListInput) (*pagination.Page[*entity.Category], error)
	Create(ctx context.Context, input CategoryInput) (*entity.Category, error)
	Update(ctx context.Context, input CategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
