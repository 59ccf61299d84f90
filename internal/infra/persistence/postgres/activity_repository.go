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

// activityRepository implements the domain.ActivityRepository interface using GORM.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (repo *activityRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	var activityM model.ActivityModel
	err := repo.db.WithContext(ctx).
		Preload("TeamMember").
		Preload("Client").
		Preload("Project").
		Preload("Category").
		Where("id = ?", id).
		First(&activityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity by id")
	}

	return toActivityDomain(&activityM), nil
}

// GetAll returns activities passing the filter, ordered by date then ID so
// pagination downstream is deterministic.
func (repo *activityRepository) GetAll(ctx context.Context, filter repository.ActivityFilter) ([]*entity.Activity, error) {
	query := repo.db.WithContext(ctx).
		Preload("TeamMember").
		Preload("Client").
		Preload("Project").
		Preload("Category")

	if filter.TeamMemberID != uuid.Nil {
		query = query.Where("team_member_id = ?", filter.TeamMemberID)
	}
	if filter.ClientID != uuid.Nil {
		query = query.Where("client_id = ?", filter.ClientID)
	}
	if filter.ProjectID != uuid.Nil {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.CategoryID != uuid.Nil {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if !filter.From.IsZero() {
		query = query.Where("date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("date <= ?", filter.To)
	}

	var activitiesM []*model.ActivityModel
	if err := query.Order("date, id").Find(&activitiesM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	activities := make([]*entity.Activity, 0, len(activitiesM))
	for _, activityM := range activitiesM {
		activities = append(activities, toActivityDomain(activityM))
	}

	return activities, nil
}

func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activityM := fromActivityDomain(activity)
	err := repo.db.WithContext(ctx).
		Omit("TeamMember", "Client", "Project", "Category").
		Create(activityM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "activity references an unknown member, client, project or category")
		}

		return errors.Wrap(err, "failed to create activity")
	}

	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt
	activity.UpdatedAt = activityM.UpdatedAt

	return nil
}

func (repo *activityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	result := repo.db.WithContext(ctx).
		Omit("TeamMember", "Client", "Project", "Category").
		Model(&model.ActivityModel{}).
		Where("id = ?", activity.ID).
		Updates(fromActivityDomain(activity))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update activity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}

func (repo *activityRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).Delete(&model.ActivityModel{}, "id = ?", id)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete activity")
	}

	return result.RowsAffected > 0, nil
}

// toActivityDomain converts a GORM ActivityModel to a domain Activity entity.
func toActivityDomain(data *model.ActivityModel) *entity.Activity {
	if data == nil {
		return nil
	}

	activity := &entity.Activity{
		ID:           data.ID,
		TeamMemberID: data.TeamMemberID,
		ClientID:     data.ClientID,
		ProjectID:    data.ProjectID,
		CategoryID:   data.CategoryID,
		Date:         data.Date,
		Hours:        data.Hours,
		Overtime:     data.Overtime,
		Description:  data.Description,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.TeamMember.ID != uuid.Nil {
		activity.TeamMember = toTeamMemberDomain(&data.TeamMember)
	}
	if data.Client.ID != uuid.Nil {
		activity.Client = toClientDomain(&data.Client)
	}
	if data.Project.ID != uuid.Nil {
		activity.Project = toProjectDomain(&data.Project)
	}
	if data.Category.ID != uuid.Nil {
		activity.Category = toCategoryDomain(&data.Category)
	}

	return activity
}

// fromActivityDomain converts a domain Activity entity to a GORM ActivityModel.
func fromActivityDomain(data *entity.Activity) *model.ActivityModel {
	if data == nil {
		return nil
	}

	return &model.ActivityModel{
		ID:           data.ID,
		TeamMemberID: data.TeamMemberID,
		ClientID:     data.ClientID,
		ProjectID:    data.ProjectID,
		CategoryID:   data.CategoryID,
		Date:         data.Date,
		Hours:        data.Hours,
		Overtime:     data.Overtime,
		Description:  data.Description,
	}
}
