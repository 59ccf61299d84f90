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

// projectService implements the ProjectUsecase interface.
type projectService struct {
	txManager   repository.TransactionManager
	projectRepo repository.ProjectRepository
	logger      *slog.Logger
}

// ProjectServiceParams holds dependencies for projectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProjectRepo repository.ProjectRepository
	Logger      *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		txManager:   params.TxManager,
		projectRepo: params.ProjectRepo,
		logger:      params.Logger,
	}
}

func (srv *projectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *projectService) Get(ctx context.Context, id uuid.UUID) (*usecase.ProjectOutput, error) {
	project, err := srv.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to get project")
	}

	return toProjectOutput(project), nil
}

func (srv *projectService) List(ctx context.Context, input usecase.ListInput) (*pagination.Page[*usecase.ProjectOutput], error) {
	projects, err := srv.projectRepo.GetAll(ctx, repository.Filter{
		FirstLetter: input.FirstLetter,
		SearchText:  input.SearchText,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return pagination.Paginate(toProjectOutputs(projects), input.PageNumber, input.PageSize)
}

// ListByStatus pages through projects carrying the given status label, with
// the usual name filters applied in memory.
func (srv *projectService) ListByStatus(ctx context.Context, status string, input usecase.ListInput) (*pagination.Page[*usecase.ProjectOutput], error) {
	projects, err := srv.projectRepo.GetByStatus(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects by status")
	}

	filter := repository.Filter{FirstLetter: input.FirstLetter, SearchText: input.SearchText}
	filtered := make([]*entity.Project, 0, len(projects))
	for _, project := range projects {
		if filter.Matches(project.Name) {
			filtered = append(filtered, project)
		}
	}

	return pagination.Paginate(toProjectOutputs(filtered), input.PageNumber, input.PageSize)
}

// Create persists a new project. New projects always start inactive; the
// input status is ignored on this path.
func (srv *projectService) Create(ctx context.Context, input usecase.ProjectInput) (*usecase.ProjectOutput, error) {
	project := &entity.Project{
		Name:        input.Name,
		Description: input.Description,
		CustomerID:  input.CustomerID,
		LeadID:      input.LeadID,
		Status:      entity.Status{Name: entity.StatusInactive},
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ClientRepo().GetByID(ctx, input.CustomerID); err != nil {
			if errors.Is(err, repository.ErrClientNotFound) {
				return domainerrors.ErrClientNotFound
			}

			return errors.Wrap(err, "failed to verify project customer")
		}

		if _, err := repoFactory.TeamMemberRepo().GetByID(ctx, input.LeadID); err != nil {
			if errors.Is(err, repository.ErrTeamMemberNotFound) {
				return domainerrors.ErrMemberNotFound
			}

			return errors.Wrap(err, "failed to verify project lead")
		}

		return repoFactory.ProjectRepo().Create(ctx, project)
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		srv.log(ctx).Error("Failed to execute project creation transaction", slog.Any("error", err))

		return nil, domainerrors.ErrTransactionFailed.WrapMessage("failed to execute project creation transaction")
	}

	srv.log(ctx).Info("Project created", slog.Any("projectID", project.ID))

	return toProjectOutput(project), nil
}

func (srv *projectService) Update(ctx context.Context, input usecase.ProjectInput) (*usecase.ProjectOutput, error) {
	project := &entity.Project{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		CustomerID:  input.CustomerID,
		LeadID:      input.LeadID,
		Status:      entity.Status{Name: input.Status},
	}

	if err := srv.projectRepo.Update(ctx, project); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to update project")
	}

	return srv.Get(ctx, input.ID)
}

func (srv *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	existed, err := srv.projectRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete project")
	}
	if !existed {
		return domainerrors.ErrProjectNotFound
	}

	srv.log(ctx).Info("Project deleted", slog.Any("projectID", id))

	return nil
}

func toProjectOutput(project *entity.Project) *usecase.ProjectOutput {
	if project == nil {
		return nil
	}

	out := &usecase.ProjectOutput{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		CustomerID:  project.CustomerID,
		LeadID:      project.LeadID,
		Status:      project.Status.Name,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}

	if project.Customer != nil {
		out.Customer = project.Customer.Name
	}
	if project.Lead != nil {
		out.Lead = project.Lead.Name
	}

	return out
}

func toProjectOutputs(projects []*entity.Project) []*usecase.ProjectOutput {
	outputs := make([]*usecase.ProjectOutput, 0, len(projects))
	for _, project := range projects {
		outputs = append(outputs, toProjectOutput(project))
	}

	return outputs
}
