// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"timesheet/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new team member.
type RegisterInput struct {
	Name         string
	Username     string
	Email        string
	Password     string
	Role         string
	HoursPerWeek float64
}

// LoginInput defines the data required for a member to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// MemberOutput is the externally visible projection of a team member.
// Credential material (digest and salt) never leaves the usecase layer.
type MemberOutput struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	HoursPerWeek float64   `json:"hoursPerWeek"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RegisterOutput returns the newly created member's basic information.
type RegisterOutput struct {
	Member *MemberOutput `json:"member"`
}

// LoginOutput returns the bearer token after a successful login.
type LoginOutput struct {
	AccessToken string        `json:"accessToken"`
	Member      *MemberOutput `json:"member"`
}

// ToMemberOutput maps a domain entity onto its external projection.
func ToMemberOutput(member *entity.TeamMember) *MemberOutput {
	if member == nil {
		return nil
	}

	return &MemberOutput{
		ID:           member.ID,
		Name:         member.Name,
		Username:     member.Username,
		Email:        member.Email,
		Role:         member.Role.String(),
		Status:       member.Status.Name,
		HoursPerWeek: member.HoursPerWeek,
		CreatedAt:    member.CreatedAt,
		UpdatedAt:    member.UpdatedAt,
	}
}

// AccountUsecase defines the account-related business operations: creating
// credentialed members and exchanging credentials for bearer tokens.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates a new member with freshly derived credential
	// material. The username, email and role are validated before any
	// write happens; the whole operation runs in one transaction.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login verifies the email/password pair and issues a bearer token.
	// Unknown email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
