package postgres

import (
	"context"
	"testing"

	"timesheet/internal/domain/repository"
	"timesheet/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	var factory repository.RepositoryFactory
	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		factory = f
		return nil
	})

	require.NoError(t, err)
	assert.NotNil(t, factory.TeamMemberRepo())
	assert.NotNil(t, factory.ActivityRepo())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("business rule violated")
	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return boom
	})

	// The original business error must survive the rollback untouched.
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
			panic("unexpected")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
