package usecase

import (
	"context"

	"timesheet/internal/domain/entity"
	"timesheet/internal/domain/pagination"

	"github.com/google/uuid"
)

// ClientInput defines the data for creating or updating a client. The ID is
// ignored on create.
type ClientInput struct {
	ID         uuid.UUID
	Name       string
	Address    string
	City       string
	PostalCode string
	Country    string
}

// ClientUsecase defines CRUD operations on the client directory.
type ClientUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	List(ctx context.Context, input ListInput) (*pagination.Page[*entity.Client], error)
	Create(ctx context.Context, input ClientInput) (*entity.Client, error)
	Update(ctx context.Context, input ClientInput) (*entity.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
