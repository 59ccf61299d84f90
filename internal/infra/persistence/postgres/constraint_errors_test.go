package postgres

import (
	"testing"

	"timesheet/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "create failed")))
	assert.True(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueConstraintViolation(gorm.ErrRecordNotFound))
	assert.False(t, isUniqueConstraintViolation(errors.New("boom")))
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isForeignKeyConstraintViolation(gorm.ErrDuplicatedKey))
}

func TestTranslateTeamMemberConflict(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "username constraint",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "uni_team_members_username"},
			want: repository.ErrUsernameConflict,
		},
		{
			name: "email constraint",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "uni_team_members_email"},
			want: repository.ErrEmailConflict,
		},
		{
			name: "unknown constraint",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "some_other_index"},
			want: repository.ErrUniqueConflict,
		},
		{
			name: "wrapped driver error",
			err:  errors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: "uni_team_members_email"}, "create failed"),
			want: repository.ErrEmailConflict,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, translateTeamMemberConflict(tc.err), tc.want)
		})
	}
}

// Errors that are not unique violations pass through untouched.
func TestTranslateTeamMemberConflict_Passthrough(t *testing.T) {
	original := errors.New("connection reset")

	assert.Equal(t, original, translateTeamMemberConflict(original))
}

// GORM's translated duplicate error keeps the violated index name in its
// message, which is enough for attribution when no PgError is present.
func TestTranslateTeamMemberConflict_MessageFallback(t *testing.T) {
	err := errors.Wrap(gorm.ErrDuplicatedKey, `duplicate key value violates unique constraint "uni_team_members_username"`)

	assert.ErrorIs(t, translateTeamMemberConflict(err), repository.ErrUsernameConflict)
}
