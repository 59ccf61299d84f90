package usecase

import (
	"context"
	"time"

	"timesheet/internal/domain/pagination"

	"github.com/google/uuid"
)

// ProjectInput defines the data for creating or updating a project. The ID is
// ignored on create; new projects start inactive regardless of input.
type ProjectInput struct {
	ID          uuid.UUID
	Name        string
	Description string
	CustomerID  uuid.UUID
	LeadID      uuid.UUID
	Status      string
}

// ProjectOutput is the external projection of a project, carrying resolved
// customer and lead names alongside the raw IDs.
type ProjectOutput struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CustomerID  uuid.UUID `json:"customerId"`
	Customer    string    `json:"customer,omitempty"`
	LeadID      uuid.UUID `json:"leadId"`
	Lead        string    `json:"lead,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProjectUsecase defines CRUD and status-based listing operations on projects.
type ProjectUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*ProjectOutput, error)
	List(ctx context.Context, input ListInput) (*pagination.Page[*ProjectOutput], error)
	ListByStatus(ctx context.Context, status string, input ListInput) (*pagination.Page[*ProjectOutput], error)
	Create(ctx context.Context, input ProjectInput) (*ProjectOutput, error)
	Update(ctx context.Context, input ProjectInput) (*ProjectOutput, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
