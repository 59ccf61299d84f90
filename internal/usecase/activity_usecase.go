package usecase

import (
	"context"
	"time"

	"timesheet/internal/domain/pagination"

	"github.com/google/uuid"
)

// ActivityInput defines the data for recording or updating an activity.
type ActivityInput struct {
	ID           uuid.UUID
	TeamMemberID uuid.UUID
	ClientID     uuid.UUID
	ProjectID    uuid.UUID
	CategoryID   uuid.UUID
	Date         time.Time
	Hours        float64
	Overtime     float64
	Description  string
}

// ActivityListInput narrows activity listings. Zero UUIDs and zero times mean
// "no constraint"; the page window follows the same rules as ListInput.
type ActivityListInput struct {
	TeamMemberID uuid.UUID
	ClientID     uuid.UUID
	ProjectID    uuid.UUID
	CategoryID   uuid.UUID
	From         time.Time
	To           time.Time
	PageNumber   int
	PageSize     int
}

// ActivityOutput is the external projection of an activity with resolved
// display names.
type ActivityOutput struct {
	ID           uuid.UUID `json:"id"`
	TeamMemberID uuid.UUID `json:"teamMemberId"`
	TeamMember   string    `json:"teamMember,omitempty"`
	ClientID     uuid.UUID `json:"clientId"`
	Client       string    `json:"client,omitempty"`
	ProjectID    uuid.UUID `json:"projectId"`
	Project      string    `json:"project,omitempty"`
	CategoryID   uuid.UUID `json:"categoryId"`
	Category     string    `json:"category,omitempty"`
	Date         time.Time `json:"date"`
	Hours        float64   `json:"hours"`
	Overtime     float64   `json:"overtime,omitempty"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ActivityUsecase defines recording and listing of work entries.
type ActivityUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*ActivityOutput, error)
	List(ctx context.Context, input ActivityListInput) (*pagination.Page[*ActivityOutput], error)
	Create(ctx context.Context, input ActivityInput) (*ActivityOutput, error)
	Update(ctx context.Context, input ActivityInput) (*ActivityOutput, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
