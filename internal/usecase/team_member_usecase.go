package usecase

import (
	"context"

	"timesheet/internal/domain/pagination"

	"github.com/google/uuid"
)

// ListInput carries the shared listing parameters: optional name filters plus
// the page window. Page values must be positive; handlers apply defaults for
// omitted parameters before calling the usecase.
type ListInput struct {
	FirstLetter string
	SearchText  string
	PageNumber  int
	PageSize    int
}

// UpdateMemberInput defines the mutable fields of a team member. Credentials
// are not updatable through this path.
type UpdateMemberInput struct {
	ID           uuid.UUID
	Name         string
	Role         string
	Status       string
	HoursPerWeek float64
}

// TeamMemberUsecase defines read and maintenance operations on the member
// directory. Registration lives on AccountUsecase.
type TeamMemberUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*MemberOutput, error)
	List(ctx context.Context, input ListInput) (*pagination.Page[*MemberOutput], error)
	Update(ctx context.Context, input UpdateMemberInput) (*MemberOutput, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
