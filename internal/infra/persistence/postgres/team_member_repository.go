// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// teamMemberRepository implements the domain.TeamMemberRepository interface using GORM.
type teamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository is the constructor for teamMemberRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewTeamMemberRepository(db *gorm.DB) repository.TeamMemberRepository {
	return &teamMemberRepository{db: db}
}

// GetByID retrieves a single member by their unique ID, preloading the status reference.
func (repo *teamMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error) {
	var memberM model.TeamMemberModel
	err := repo.db.WithContext(ctx).
		Preload("Status").
		Where("id = ?", id).
		First(&memberM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTeamMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find team member by id")
	}

	return toTeamMemberDomain(&memberM), nil
}

// FindByUsername retrieves the member holding the given username. The lookup
// is exact-match; no case folding is applied.
func (repo *teamMemberRepository) FindByUsername(ctx context.Context, username string) (*entity.TeamMember, error) {
	var memberM model.TeamMemberModel
	err := repo.db.WithContext(ctx).
		Preload("Status").
		Where("username = ?", username).
		First(&memberM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTeamMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find team member by username")
	}

	return toTeamMemberDomain(&memberM), nil
}

// FindByEmail retrieves the member holding the given email address.
func (repo *teamMemberRepository) FindByEmail(ctx context.Context, email string) (*entity.TeamMember, error) {
	var memberM model.TeamMemberModel
	err := repo.db.WithContext(ctx).
		Preload("Status").
		Where("email = ?", email).
		First(&memberM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTeamMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find team member by email")
	}

	return toTeamMemberDomain(&memberM), nil
}

// GetAll returns members passing the filter, ordered by username for a
// stable listing order.
func (repo *teamMemberRepository) GetAll(ctx context.Context, filter repository.Filter) ([]*entity.TeamMember, error) {
	var membersM []*model.TeamMemberModel
	err := applyNameFilter(repo.db.WithContext(ctx).Preload("Status"), filter, "username").
		Order("username").
		Find(&membersM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list team members")
	}

	members := make([]*entity.TeamMember, 0, len(membersM))
	for _, memberM := range membersM {
		members = append(members, toTeamMemberDomain(memberM))
	}

	return members, nil
}

// Create persists a new member. A unique violation raised by the database is
// attributed to the username or email column and surfaced as the matching
// conflict sentinel, so a registration race that slips past the pre-insert
// existence checks still fails cleanly.
func (repo *teamMemberRepository) Create(ctx context.Context, member *entity.TeamMember) error {
	memberM, err := repo.fromTeamMemberDomain(ctx, member)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Omit("Status").Create(memberM).Error; err != nil {
		return errors.WithStack(translateTeamMemberConflict(err))
	}

	// Update the entity with the generated ID and timestamps.
	member.ID = memberM.ID
	member.Status = entity.Status{ID: memberM.StatusID, Name: member.Status.Name}
	member.CreatedAt = memberM.CreatedAt
	member.UpdatedAt = memberM.UpdatedAt

	return nil
}

// Update modifies an existing member record.
func (repo *teamMemberRepository) Update(ctx context.Context, member *entity.TeamMember) error {
	memberM, err := repo.fromTeamMemberDomain(ctx, member)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).Omit("Status").
		Model(&model.TeamMemberModel{}).
		Where("id = ?", member.ID).
		Updates(memberM)
	if result.Error != nil {
		return errors.WithStack(translateTeamMemberConflict(result.Error))
	}
	if result.RowsAffected == 0 {
		return repository.ErrTeamMemberNotFound
	}

	return nil
}

// Delete removes the member with the given ID, reporting whether a record existed.
func (repo *teamMemberRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).Delete(&model.TeamMemberModel{}, "id = ?", id)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete team member")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toTeamMemberDomain converts a GORM TeamMemberModel to a domain TeamMember entity.
func toTeamMemberDomain(data *model.TeamMemberModel) *entity.TeamMember {
	if data == nil {
		return nil
	}

	return &entity.TeamMember{
		ID:             data.ID,
		Name:           data.Name,
		Username:       data.Username,
		Email:          data.Email,
		PasswordDigest: data.PasswordDigest,
		PasswordSalt:   data.PasswordSalt,
		Role:           entity.Role(data.Role),
		Status:         entity.Status{ID: data.StatusID, Name: data.Status.Name},
		HoursPerWeek:   data.HoursPerWeek,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromTeamMemberDomain converts a domain TeamMember entity to a GORM model,
// resolving the status label to its reference row.
func (repo *teamMemberRepository) fromTeamMemberDomain(ctx context.Context, data *entity.TeamMember) (*model.TeamMemberModel, error) {
	statusID, err := resolveStatusID(ctx, repo.db, data.Status.Name)
	if err != nil {
		return nil, err
	}

	return &model.TeamMemberModel{
		ID:             data.ID,
		Name:           data.Name,
		Username:       data.Username,
		Email:          data.Email,
		PasswordDigest: data.PasswordDigest,
		PasswordSalt:   data.PasswordSalt,
		Role:           data.Role.String(),
		StatusID:       statusID,
		HoursPerWeek:   data.HoursPerWeek,
	}, nil
}
