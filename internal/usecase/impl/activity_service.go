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

// activityService implements the ActivityUsecase interface.
type activityService struct {
	txManager    repository.TransactionManager
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
}

// ActivityServiceParams holds dependencies for activityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		txManager:    params.TxManager,
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
	}
}

func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *activityService) Get(ctx context.Context, id uuid.UUID) (*usecase.ActivityOutput, error) {
	activity, err := srv.activityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, domainerrors.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to get activity")
	}

	return toActivityOutput(activity), nil
}

func (srv *activityService) List(ctx context.Context, input usecase.ActivityListInput) (*pagination.Page[*usecase.ActivityOutput], error) {
	activities, err := srv.activityRepo.GetAll(ctx, repository.ActivityFilter{
		TeamMemberID: input.TeamMemberID,
		ClientID:     input.ClientID,
		ProjectID:    input.ProjectID,
		CategoryID:   input.CategoryID,
		From:         input.From,
		To:           input.To,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	outputs := make([]*usecase.ActivityOutput, 0, len(activities))
	for _, activity := range activities {
		outputs = append(outputs, toActivityOutput(activity))
	}

	return pagination.Paginate(outputs, input.PageNumber, input.PageSize)
}

// Create records a new activity after verifying every referenced record
// exists. The checks and the insert run in one transaction.
func (srv *activityService) Create(ctx context.Context, input usecase.ActivityInput) (*usecase.ActivityOutput, error) {
	if err := validateActivityInput(input); err != nil {
		return nil, err
	}

	activity := fromActivityInput(input)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.verifyReferences(ctx, repoFactory, input); err != nil {
			return err
		}

		return repoFactory.ActivityRepo().Create(ctx, activity)
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		srv.log(ctx).Error("Failed to execute activity creation transaction", slog.Any("error", err))

		return nil, domainerrors.ErrTransactionFailed.WrapMessage("failed to execute activity creation transaction")
	}

	srv.log(ctx).Debug("Activity recorded", slog.Any("activityID", activity.ID))

	return srv.Get(ctx, activity.ID)
}

func (srv *activityService) Update(ctx context.Context, input usecase.ActivityInput) (*usecase.ActivityOutput, error) {
	if err := validateActivityInput(input); err != nil {
		return nil, err
	}

	if err := srv.activityRepo.Update(ctx, fromActivityInput(input)); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, domainerrors.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to update activity")
	}

	return srv.Get(ctx, input.ID)
}

func (srv *activityService) Delete(ctx context.Context, id uuid.UUID) error {
	existed, err := srv.activityRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete activity")
	}
	if !existed {
		return domainerrors.ErrActivityNotFound
	}

	srv.log(ctx).Info("Activity deleted", slog.Any("activityID", id))

	return nil
}

// verifyReferences confirms the member, client, project and category the
// activity points at all exist, mapping each miss to its not-found error.
func (srv *activityService) verifyReferences(ctx context.Context, repoFactory repository.RepositoryFactory, input usecase.ActivityInput) error {
	if _, err := repoFactory.TeamMemberRepo().GetByID(ctx, input.TeamMemberID); err != nil {
		if errors.Is(err, repository.ErrTeamMemberNotFound) {
			return domainerrors.ErrMemberNotFound
		}

		return errors.Wrap(err, "failed to verify activity member")
	}
	if _, err := repoFactory.ClientRepo().GetByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return domainerrors.ErrClientNotFound
		}

		return errors.Wrap(err, "failed to verify activity client")
	}
	if _, err := repoFactory.ProjectRepo().GetByID(ctx, input.ProjectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return domainerrors.ErrProjectNotFound
		}

		return errors.Wrap(err, "failed to verify activity project")
	}
	if _, err := repoFactory.CategoryRepo().GetByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to verify activity category")
	}

	return nil
}

func validateActivityInput(input usecase.ActivityInput) error {
	if input.Date.IsZero() {
		return domainerrors.ErrValidationFailed.WithDetails("activity date is required")
	}
	if input.Hours < 0 || input.Overtime < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("hours must not be negative")
	}

	return nil
}

func fromActivityInput(input usecase.ActivityInput) *entity.Activity {
	return &entity.Activity{
		ID:           input.ID,
		TeamMemberID: input.TeamMemberID,
		ClientID:     input.ClientID,
		ProjectID:    input.ProjectID,
		CategoryID:   input.CategoryID,
		Date:         input.Date,
		Hours:        input.Hours,
		Overtime:     input.Overtime,
		Description:  input.Description,
	}
}

func toActivityOutput(activity *entity.Activity) *usecase.ActivityOutput {
	if activity == nil {
		return nil
	}

	out := &usecase.ActivityOutput{
		ID:           activity.ID,
		TeamMemberID: activity.TeamMemberID,
		ClientID:     activity.ClientID,
		ProjectID:    activity.ProjectID,
		CategoryID:   activity.CategoryID,
		Date:         activity.Date,
		Hours:        activity.Hours,
		Overtime:     activity.Overtime,
		Description:  activity.Description,
		CreatedAt:    activity.CreatedAt,
		UpdatedAt:    activity.UpdatedAt,
	}

	if activity.TeamMember != nil {
		out.TeamMember = activity.TeamMember.Name
	}
	if activity.Client != nil {
		out.Client = activity.Client.Name
	}
	if activity.Project != nil {
		out.Project = activity.Project.Name
	}
	if activity.Category != nil {
		out.Category = activity.Category.Name
	}

	return out
}
