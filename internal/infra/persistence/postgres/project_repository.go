package postgres

import (
	"context"

	"timesheet/internal/domain/entity"
	"timesheet/internal/domain/repository"
	"timesheet/internal/errors"
	"timesheet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// projectRepository implements the domain.ProjectRepository interface using GORM.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

func (repo *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectM model.ProjectModel
	err := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("Lead").
		Preload("Status").
		Where("id = ?", id).
		First(&projectM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by id")
	}

	return toProjectDomain(&projectM), nil
}

func (repo *projectRepository) GetAll(ctx context.Context, filter repository.Filter) ([]*entity.Project, error) {
	var projectsM []*model.ProjectModel
	err := applyNameFilter(repo.db.WithContext(ctx), filter, "name").
		Preload("Customer").
		Preload("Lead").
		Preload("Status").
		Order("name").
		Find(&projectsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return toProjectDomainSlice(projectsM), nil
}

// GetByStatus returns projects whose status reference carries the given label.
func (repo *projectRepository) GetByStatus(ctx context.Context, status string) ([]*entity.Project, error) {
	var projectsM []*model.ProjectModel
	err := repo.db.WithContext(ctx).
		Joins("Status").
		Where(`"Status"."name" = ?`, status).
		Preload("Customer").
		Preload("Lead").
		Order("projects.name").
		Find(&projectsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects by status")
	}

	return toProjectDomainSlice(projectsM), nil
}

func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectM, err := repo.fromProjectDomain(ctx, project)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Omit("Customer", "Lead", "Status").Create(projectM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "project references an unknown customer or lead")
		}

		return errors.Wrap(err, "failed to create project")
	}

	project.ID = projectM.ID
	project.Status = entity.Status{ID: projectM.StatusID, Name: project.Status.Name}
	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

func (repo *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	projectM, err := repo.fromProjectDomain(ctx, project)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).Omit("Customer", "Lead", "Status").
		Model(&model.ProjectModel{}).
		Where("id = ?", project.ID).
		Updates(projectM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

func (repo *projectRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).Delete(&model.ProjectModel{}, "id = ?", id)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete project")
	}

	return result.RowsAffected > 0, nil
}

// toProjectDomain converts a GORM ProjectModel to a domain Project entity.
func toProjectDomain(data *model.ProjectModel) *entity.Project {
	if data == nil {
		return nil
	}

	project := &entity.Project{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CustomerID:  data.CustomerID,
		LeadID:      data.LeadID,
		Status:      entity.Status{ID: data.StatusID, Name: data.Status.Name},
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Customer.ID != uuid.Nil {
		project.Customer = toClientDomain(&data.Customer)
	}
	if data.Lead.ID != uuid.Nil {
		project.Lead = toTeamMemberDomain(&data.Lead)
	}

	return project
}

func toProjectDomainSlice(data []*model.ProjectModel) []*entity.Project {
	projects := make([]*entity.Project, 0, len(data))
	for _, projectM := range data {
		projects = append(projects, toProjectDomain(projectM))
	}

	return projects
}

// fromProjectDomain converts a domain Project entity to a GORM model,
// resolving the status label to its reference row.
func (repo *projectRepository) fromProjectDomain(ctx context.Context, data *entity.Project) (*model.ProjectModel, error) {
	statusID, err := resolveStatusID(ctx, repo.db, data.Status.Name)
	if err != nil {
		return nil, err
	}

	return &model.ProjectModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CustomerID:  data.CustomerID,
		LeadID:      data.LeadID,
		StatusID:    statusID,
	}, nil
}
