// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"

	"timesheet/internal/domain/entity"
	"timesheet/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors returned by repositories for absent or conflicting records.
// Service-layer logic branches on these; the AppError taxonomy is applied at
// the usecase boundary.
var (
	ErrTeamMemberNotFound = errors.New("team member not found")

	// ErrUsernameConflict and ErrEmailConflict report a storage-layer unique
	// constraint violation attributed to the respective column. They are the
	// backstop for registration races that slip past the pre-insert checks.
	ErrUsernameConflict = errors.New("username already exists")
	ErrEmailConflict    = errors.New("email already exists")

	// ErrUniqueConflict reports a unique violation on a constraint that could
	// not be attributed to a specific column.
	ErrUniqueConflict = errors.New("unique constraint violated")
)

// TeamMemberRepository is the team-member directory: lookup and persistence
// of identity records by id, username and email. Username and email lookups
// are exact-match.
type TeamMemberRepository interface {
	// GetByID retrieves a single member by their unique ID.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error)

	// FindByUsername retrieves the member holding the given username, or
	// ErrTeamMemberNotFound.
	FindByUsername(ctx context.Context, username string) (*entity.TeamMember, error)

	// FindByEmail retrieves the member holding the given email, or
	// ErrTeamMemberNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.TeamMember, error)

	// GetAll returns members passing the filter, ordered by username.
	GetAll(ctx context.Context, filter Filter) ([]*entity.TeamMember, error)

	// Create persists a new member. Unique violations surface as
	// ErrUsernameConflict / ErrEmailConflict.
	Create(ctx context.Context, member *entity.TeamMember) error

	// Update modifies an existing member record.
	Update(ctx context.Context, member *entity.TeamMember) error

	// Delete removes the member with the given ID, reporting whether a
	// record existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
