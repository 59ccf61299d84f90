package impl

import (
	"context"
	"log/slog"

	deliverycontext "timesheet/internal/delivery/context"
	"timesheet/internal/domain/entity"
	domainerrors "timesheet/internal/domain/errors"
	"timesheet/internal/domain/pagination"
	"timesheet/internal/domain/repository"
	"timesheet/internal/errors"
	"timesheet/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// teamMemberService implements the TeamMemberUsecase interface.
type teamMemberService struct {
	txManager  repository.TransactionManager
	memberRepo repository.TeamMemberRepository
	logger     *slog.Logger
}

// TeamMemberServiceParams holds dependencies for teamMemberService, injected by Fx.
type TeamMemberServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	MemberRepo repository.TeamMemberRepository
	Logger     *slog.Logger
}

// NewTeamMemberService is the constructor for teamMemberService.
func NewTeamMemberService(params TeamMemberServiceParams) usecase.TeamMemberUsecase {
	return &teamMemberService{
		txManager:  params.TxManager,
		memberRepo: params.MemberRepo,
		logger:     params.Logger,
	}
}

func (srv *teamMemberService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *teamMemberService) Get(ctx context.Context, id uuid.UUID) (*usecase.MemberOutput, error) {
	member, err := srv.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTeamMemberNotFound) {
			return nil, domainerrors.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to get team member")
	}

	return usecase.ToMemberOutput(member), nil
}

// List returns one page of the member directory, filtered by username.
func (srv *teamMemberService) List(ctx context.Context, input usecase.ListInput) (*pagination.Page[*usecase.MemberOutput], error) {
	members, err := srv.memberRepo.GetAll(ctx, repository.Filter{
		FirstLetter: input.FirstLetter,
		SearchText:  input.SearchText,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list team members")
	}

	outputs := make([]*usecase.MemberOutput, 0, len(members))
	for _, member := range members {
		outputs = append(outputs, usecase.ToMemberOutput(member))
	}

	return pagination.Paginate(outputs, input.PageNumber, input.PageSize)
}

// Update modifies the mutable fields of a member inside one transaction:
// the read, the role/status checks and the write see the same state.
func (srv *teamMemberService) Update(ctx context.Context, input usecase.UpdateMemberInput) (*usecase.MemberOutput, error) {
	role, err := entity.ParseRole(input.Role)
	if err != nil {
		return nil, domainerrors.ErrInvalidRole.WithDetails(err.Error())
	}

	var updated *entity.TeamMember
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		memberRepo := repoFactory.TeamMemberRepo()

		member, err := memberRepo.GetByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrTeamMemberNotFound) {
				return domainerrors.ErrMemberNotFound
			}

			return errors.Wrap(err, "failed to load team member for update")
		}

		member.Name = input.Name
		member.Role = role
		member.Status = entity.Status{Name: input.Status}
		member.HoursPerWeek = input.HoursPerWeek

		if err := memberRepo.Update(ctx, member); err != nil {
			return errors.Wrap(err, "failed to update team member")
		}

		updated = member

		return nil
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		srv.log(ctx).Error("Failed to execute member update transaction", slog.Any("memberID", input.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTransactionFailed.WrapMessage("failed to execute member update transaction")
	}

	return usecase.ToMemberOutput(updated), nil
}

func (srv *teamMemberService) Delete(ctx context.Context, id uuid.UUID) error {
	existed, err := srv.memberRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete team member")
	}
	if !existed {
		return domainerrors.ErrMemberNotFound
	}

	srv.log(ctx).Info("Team member deleted", slog.Any("memberID", id))

	return nil
}
