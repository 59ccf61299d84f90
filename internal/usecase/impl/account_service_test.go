package impl

import (
	"context"
	"fmt"
	"sync"
	"testing"

	domainerrors "timesheet/internal/domain/errors"
	"timesheet/internal/domain/repository"
	"timesheet/internal/errors"
	"timesheet/internal/infra/auth"
	"timesheet/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountServiceFixture struct {
	service usecase.AccountUsecase
	store   *fakeMemberStore
	tokens  *fakeTokenService
}

func newAccountServiceFixture() *accountServiceFixture {
	store := newFakeMemberStore()
	tokens := &fakeTokenService{}

	service := NewAccountService(AccountServiceParams{
		TxManager:  &fakeTxManager{factory: &fakeRepoFactory{members: store}},
		MemberRepo: store,
		Hasher:     auth.NewHMACHasher(),
		Tokens:     tokens,
		Logger:     newDiscardLogger(),
	})

	return &accountServiceFixture{service: service, store: store, tokens: tokens}
}

func validRegisterInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Name:         "Ada Lovelace",
		Username:     "adalovelace",
		Email:        "ada@example.com",
		Password:     "first programmer",
		Role:         "Admin",
		HoursPerWeek: 40,
	}
}

func TestAccountService_Register(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()

	output, err := fx.service.Register(ctx, validRegisterInput())
	require.NoError(t, err)
	require.NotNil(t, output.Member)

	assert.Equal(t, "adalovelace", output.Member.Username)
	assert.Equal(t, "Admin", output.Member.Role)
	assert.Equal(t, "Active", output.Member.Status)
	assert.NotZero(t, output.Member.ID)

	// The persisted record carries verifiable credential material.
	stored, err := fx.store.FindByUsername(ctx, "adalovelace")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordDigest)
	assert.NotEmpty(t, stored.PasswordSalt)
	assert.True(t, auth.NewHMACHasher().Verify("first programmer", stored.PasswordSalt, stored.PasswordDigest))
}

func TestAccountService_Register_RoleParsing(t *testing.T) {
	fx := newAccountServiceFixture()

	input := validRegisterInput()
	input.Role = "member"

	output, err := fx.service.Register(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "Member", output.Member.Role)
}

func TestAccountService_Register_InvalidRole(t *testing.T) {
	fx := newAccountServiceFixture()

	input := validRegisterInput()
	input.Role = "Administrator"

	output, err := fx.service.Register(context.Background(), input)

	assert.Nil(t, output)
	assertAppError(t, err, "INVALID_ROLE")
	// Nothing reached storage.
	assert.Zero(t, fx.store.count())
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()

	_, err := fx.service.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	input := validRegisterInput()
	input.Email = "other@example.com"

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assertAppError(t, err, "USERNAME_TAKEN")
	assert.Equal(t, 1, fx.store.count())
}

func TestAccountService_Register_EmailTaken(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()

	_, err := fx.service.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	input := validRegisterInput()
	input.Username = "otherhandle"

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assertAppError(t, err, "EMAIL_TAKEN")
	assert.Equal(t, 1, fx.store.count())
}

// A conflict surfacing from storage, as happens when a concurrent
// registration commits between the pre-check and the insert, reports the
// same error as a failed pre-check.
func TestAccountService_Register_StorageConflictBackstop(t *testing.T) {
	cases := []struct {
		name     string
		conflict error
		wantCode string
	}{
		{"username race", repository.ErrUsernameConflict, "USERNAME_TAKEN"},
		{"email race", repository.ErrEmailConflict, "EMAIL_TAKEN"},
		{"unattributed conflict", repository.ErrUniqueConflict, "STORAGE_CONFLICT"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := newAccountServiceFixture()
			fx.store.failCreateWith = errors.Wrap(tc.conflict, "insert failed")

			output, err := fx.service.Register(context.Background(), validRegisterInput())

			assert.Nil(t, output)
			assertAppError(t, err, tc.wantCode)
		})
	}
}

func TestAccountService_Register_Concurrent(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()

	const attempts = 8

	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = fx.service.Register(ctx, validRegisterInput())
		}()
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++

			continue
		}
		assert.True(t,
			errors.Is(err, domainerrors.ErrUsernameTaken) || errors.Is(err, domainerrors.ErrEmailTaken),
			fmt.Sprintf("unexpected error: %v", err))
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, fx.store.count())
}

func TestAccountService_Login(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()

	registered, err := fx.service.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "first programmer",
	})
	require.NoError(t, err)

	assert.Equal(t, "token-"+registered.Member.ID.String(), output.AccessToken)
	assert.Equal(t, registered.Member.ID, output.Member.ID)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAccountService_Login_InvalidCredentials(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()

	_, err := fx.service.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	unknownEmail, err1 := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "first programmer",
	})
	wrongPassword, err2 := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "wrong password",
	})

	assert.Nil(t, unknownEmail)
	assert.Nil(t, wrongPassword)
	assert.ErrorIs(t, err1, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, err2, domainerrors.ErrInvalidCredentials)

	var app1, app2 domainerrors.AppError
	require.ErrorAs(t, err1, &app1)
	require.ErrorAs(t, err2, &app2)
	assert.Equal(t, app1.ErrorCode(), app2.ErrorCode())
	assert.Equal(t, app1.Message(), app2.Message())
}

// A failing token issuer is fatal for the login call and is not reported as
// an invalid-credentials error.
func TestAccountService_Login_IssuerFailure(t *testing.T) {
	fx := newAccountServiceFixture()
	ctx := context.Background()

	_, err := fx.service.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	fx.tokens.failWith = errors.New("signing key unavailable")

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "first programmer",
	})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "failed to issue access token")
}

func assertAppError(t *testing.T, err error, wantCode string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, wantCode, appErr.ErrorCode())
}
