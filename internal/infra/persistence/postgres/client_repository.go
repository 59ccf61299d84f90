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

// clientRepository implements the domain.ClientRepository interface using GORM.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (repo *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var clientM model.ClientModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&clientM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by id")
	}

	return toClientDomain(&clientM), nil
}

func (repo *clientRepository) GetAll(ctx context.Context, filter repository.Filter) ([]*entity.Client, error) {
	var clientsM []*model.ClientModel
	err := applyNameFilter(repo.db.WithContext(ctx), filter, "name").
		Order("name").
		Find(&clientsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	clients := make([]*entity.Client, 0, len(clientsM))
	for _, clientM := range clientsM {
		clients = append(clients, toClientDomain(clientM))
	}

	return clients, nil
}

func (repo *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)
	if err := repo.db.WithContext(ctx).Create(clientM).Error; err != nil {
		return errors.Wrap(err, "failed to create client")
	}

	client.ID = clientM.ID
	client.CreatedAt = clientM.CreatedAt
	client.UpdatedAt = clientM.UpdatedAt

	return nil
}

func (repo *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ClientModel{}).
		Where("id = ?", client.ID).
		Updates(fromClientDomain(client))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update client")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

func (repo *clientRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).Delete(&model.ClientModel{}, "id = ?", id)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete client")
	}

	return result.RowsAffected > 0, nil
}

// toClientDomain converts a GORM ClientModel to a domain Client entity.
func toClientDomain(data *model.ClientModel) *entity.Client {
	if data == nil {
		return nil
	}

	return &entity.Client{
		ID:         data.ID,
		Name:       data.Name,
		Address:    data.Address,
		City:       data.City,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromClientDomain converts a domain Client entity to a GORM ClientModel.
func fromClientDomain(data *entity.Client) *model.ClientModel {
	if data == nil {
		return nil
	}

	return &model.ClientModel{
		ID:         data.ID,
		Name:       data.Name,
		Address:    data.Address,
		City:       data.City,
		PostalCode: data.PostalCode,
		Country:    data.Country,
	}
}
