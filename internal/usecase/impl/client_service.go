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

// clientService implements the ClientUsecase interface.
type clientService struct {
	clientRepo repository.ClientRepository
	logger     *slog.Logger
}

// ClientServiceParams holds dependencies for clientService, injected by Fx.
type ClientServiceParams struct {
	fx.In

	ClientRepo repository.ClientRepository
	Logger     *slog.Logger
}

// NewClientService is the constructor for clientService.
func NewClientService(params ClientServiceParams) usecase.ClientUsecase {
	return &clientService{
		clientRepo: params.ClientRepo,
		logger:     params.Logger,
	}
}

func (srv *clientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *clientService) Get(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := srv.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to get client")
	}

	return client, nil
}

func (srv *clientService) List(ctx context.Context, input usecase.ListInput) (*pagination.Page[*entity.Client], error) {
	clients, err := srv.clientRepo.GetAll(ctx, repository.Filter{
		FirstLetter: input.FirstLetter,
		SearchText:  input.SearchText,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	return pagination.Paginate(clients, input.PageNumber, input.PageSize)
}

func (srv *clientService) Create(ctx context.Context, input usecase.ClientInput) (*entity.Client, error) {
	client := &entity.Client{
		Name:       input.Name,
		Address:    input.Address,
		City:       input.City,
		PostalCode: input.PostalCode,
		Country:    input.Country,
	}

	if err := srv.clientRepo.Create(ctx, client); err != nil {
		return nil, errors.Wrap(err, "failed to create client")
	}

	srv.log(ctx).Info("Client created", slog.Any("clientID", client.ID))

	return client, nil
}

func (srv *clientService) Update(ctx context.Context, input usecase.ClientInput) (*entity.Client, error) {
	client := &entity.Client{
		ID:         input.ID,
		Name:       input.Name,
		Address:    input.Address,
		City:       input.City,
		PostalCode: input.PostalCode,
		Country:    input.Country,
	}

	if err := srv.clientRepo.Update(ctx, client); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to update client")
	}

	return srv.Get(ctx, input.ID)
}

func (srv *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	existed, err := srv.clientRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete client")
	}
	if !existed {
		return domainerrors.ErrClientNotFound
	}

	srv.log(ctx).Info("Client deleted", slog.Any("clientID", id))

	return nil
}
