package auth

import (
	"testing"
	"time"

	"timesheet/config"
	"timesheet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string, ttl time.Duration) *config.Config {
	return &config.Config{
		SecretKey: config.SecretKey{
			Access:    secret,
			AccessTTL: ttl,
		},
	}
}

func testMember() *entity.TeamMember {
	return &entity.TeamMember{
		ID:       uuid.New(),
		Username: "adalovelace",
		Email:    "ada@example.com",
		Role:     entity.RoleAdmin,
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestJWTConfig("", 0))

	assert.Error(t, err)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", time.Hour))
	require.NoError(t, err)

	member := testMember()
	token, err := svc.Issue(member)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, member.ID, claims.MemberID)
	assert.Equal(t, member.Username, claims.Username)
	assert.Equal(t, "Admin", claims.Role)
	assert.Equal(t, member.ID.String(), claims.Subject)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("secret-a", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("secret-b", time.Hour))
	require.NoError(t, err)

	token, err := issuer.Issue(testMember())
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := &jwtService{secret: []byte("test-secret"), ttl: -time.Minute}

	token, err := svc.Issue(testMember())
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", time.Hour))
	require.NoError(t, err)

	_, err = svc.Validate("not.a.token")
	assert.Error(t, err)
}
