package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"timesheet/internal/domain/entity"
)

// Claims defines the custom claims embedded in issued tokens.
type Claims struct {
	MemberID uuid.UUID `json:"memberId"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	jwt.RegisteredClaims
}

// TokenService is the Token Issuer contract: given a verified identity it
// produces an opaque bearer credential safe to embed in an Authorization
// header. Issuer failure is fatal for the login call and is propagated, not
// retried.
type TokenService interface {
	// Issue creates a signed token for the given member.
	Issue(member *entity.TeamMember) (string, error)

	// Validate checks a token string and returns its claims.
	Validate(tokenString string) (*Claims, error)
}
