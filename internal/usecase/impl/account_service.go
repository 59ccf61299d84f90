// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "timesheet/internal/delivery/context"
	"timesheet/internal/domain/entity"
	domainerrors "timesheet/internal/domain/errors"
	"timesheet/internal/domain/repository"
	"timesheet/internal/domain/service"
	"timesheet/internal/errors"
	"timesheet/internal/usecase"

	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager  repository.TransactionManager
	memberRepo repository.TeamMemberRepository
	hasher     service.PasswordHasher
	tokens     service.TokenService
	logger     *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	MemberRepo repository.TeamMemberRepository
	Hasher     service.PasswordHasher
	Tokens     service.TokenService
	Logger     *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:  params.TxManager,
		memberRepo: params.MemberRepo,
		hasher:     params.Hasher,
		tokens:     params.Tokens,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete member registration process. The role is
// validated before anything touches storage; the uniqueness checks and the
// insert share one transaction so a concurrent registration of the same
// username or email cannot interleave a committed duplicate.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	role, err := entity.ParseRole(input.Role)
	if err != nil {
		srv.log(ctx).Warn("Registration rejected: unrecognized role", slog.String("role", input.Role))

		return nil, domainerrors.ErrInvalidRole.WithDetails(err.Error())
	}

	var registered *entity.TeamMember
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		memberRepo := repoFactory.TeamMemberRepo()

		if err := srv.checkAvailability(ctx, memberRepo, input.Username, input.Email); err != nil {
			return err
		}

		digest, salt, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to derive credential material", slog.Any("error", err))

			return errors.Wrap(err, "failed to hash password during registration")
		}

		newMember := &entity.TeamMember{
			Name:           input.Name,
			Username:       input.Username,
			Email:          input.Email,
			PasswordDigest: digest,
			PasswordSalt:   salt,
			Role:           role,
			Status:         entity.Status{Name: entity.StatusActive},
			HoursPerWeek:   input.HoursPerWeek,
		}

		if err := memberRepo.Create(ctx, newMember); err != nil {
			// A lost race against a concurrent registration surfaces here as
			// a constraint conflict; report it the same way as a failed
			// pre-check so callers see one behavior.
			return srv.translateCreateConflict(ctx, err)
		}

		registered = newMember

		return nil
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, domainerrors.ErrTransactionFailed.WrapMessage("failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("memberID", registered.ID))

	return &usecase.RegisterOutput{Member: usecase.ToMemberOutput(registered)}, nil
}

// checkAvailability verifies neither the username nor the email is held by an
// existing member. Username is checked first, so a request that collides on
// both reports the username conflict.
func (srv *accountService) checkAvailability(ctx context.Context, memberRepo repository.TeamMemberRepository, username, email string) error {
	_, err := memberRepo.FindByUsername(ctx, username)
	if err == nil {
		return domainerrors.ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrTeamMemberNotFound) {
		return errors.Wrap(err, "failed to check username availability")
	}

	_, err = memberRepo.FindByEmail(ctx, email)
	if err == nil {
		return domainerrors.ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrTeamMemberNotFound) {
		return errors.Wrap(err, "failed to check email availability")
	}

	return nil
}

// translateCreateConflict maps storage-layer conflict sentinels onto the
// registration error taxonomy.
func (srv *accountService) translateCreateConflict(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrUsernameConflict):
		srv.log(ctx).Warn("Registration lost a username race")

		return domainerrors.ErrUsernameTaken
	case errors.Is(err, repository.ErrEmailConflict):
		srv.log(ctx).Warn("Registration lost an email race")

		return domainerrors.ErrEmailTaken
	case errors.Is(err, repository.ErrUniqueConflict):
		srv.log(ctx).Warn("Registration hit an unattributed unique conflict")

		return domainerrors.ErrStorageConflict
	default:
		return errors.Wrap(err, "failed to create team member during registration")
	}
}

// Login verifies the email/password pair and issues a bearer token. The two
// failure causes are logged apart for operators but collapse into one
// invalid-credentials error toward the caller, so accounts cannot be
// enumerated by probing.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login")

	member, err := srv.memberRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrTeamMemberNotFound) {
			srv.log(ctx).Warn("Login failed: unknown email")

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load member for login")
	}

	if !srv.hasher.Verify(input.Password, member.PasswordSalt, member.PasswordDigest) {
		srv.log(ctx).Warn("Login failed: password mismatch", slog.Any("memberID", member.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, err := srv.tokens.Issue(member)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("memberID", member.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("Member logged in", slog.Any("memberID", member.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		Member:      usecase.ToMemberOutput(member),
	}, nil
}
