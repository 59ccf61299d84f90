package impl

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"timesheet/internal/domain/entity"
	domainerrors "timesheet/internal/domain/errors"
	"timesheet/internal/domain/repository"
	"timesheet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClientStore is a mutex-guarded in-memory ClientRepository.
type fakeClientStore struct {
	mu      sync.Mutex
	clients map[uuid.UUID]*entity.Client
}

func newFakeClientStore() *fakeClientStore {
	return &fakeClientStore{clients: make(map[uuid.UUID]*entity.Client)}
}

func (s *fakeClientStore) GetByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients[id]
	if !ok {
		return nil, repository.ErrClientNotFound
	}
	cloned := *client

	return &cloned, nil
}

func (s *fakeClientStore) GetAll(_ context.Context, filter repository.Filter) ([]*entity.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.Client
	for _, client := range s.clients {
		if filter.Matches(client.Name) {
			cloned := *client
			out = append(out, &cloned)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (s *fakeClientStore) Create(_ context.Context, client *entity.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client.ID = uuid.New()
	cloned := *client
	s.clients[client.ID] = &cloned

	return nil
}

func (s *fakeClientStore) Update(_ context.Context, client *entity.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[client.ID]; !ok {
		return repository.ErrClientNotFound
	}
	cloned := *client
	s.clients[client.ID] = &cloned

	return nil
}

func (s *fakeClientStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[id]; !ok {
		return false, nil
	}
	delete(s.clients, id)

	return true, nil
}

func newClientServiceFixture(t *testing.T, seed int) (usecase.ClientUsecase, *fakeClientStore) {
	t.Helper()

	store := newFakeClientStore()
	service := NewClientService(ClientServiceParams{
		ClientRepo: store,
		Logger:     newDiscardLogger(),
	})

	for i := range seed {
		_, err := service.Create(context.Background(), usecase.ClientInput{
			Name:    fmt.Sprintf("Client %02d", i+1),
			City:    "Hamburg",
			Country: "Germany",
		})
		require.NoError(t, err)
	}

	return service, store
}

func TestClientService_CreateAndGet(t *testing.T) {
	service, _ := newClientServiceFixture(t, 0)
	ctx := context.Background()

	created, err := service.Create(ctx, usecase.ClientInput{
		Name:       "Acme Corp",
		Address:    "Main Street 1",
		City:       "Berlin",
		PostalCode: "10115",
		Country:    "Germany",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.Name)
	assert.Equal(t, "Berlin", got.City)
}

func TestClientService_Get_NotFound(t *testing.T) {
	service, _ := newClientServiceFixture(t, 0)

	_, err := service.Get(context.Background(), uuid.New())

	assertAppError(t, err, "CLIENT_NOT_FOUND")
}

func TestClientService_List_Pages(t *testing.T) {
	service, _ := newClientServiceFixture(t, 25)
	ctx := context.Background()

	page, err := service.List(ctx, usecase.ListInput{PageNumber: 2, PageSize: 10})
	require.NoError(t, err)

	require.Len(t, page.Items, 10)
	assert.Equal(t, "Client 11", page.Items[0].Name)
	assert.Equal(t, "Client 20", page.Items[9].Name)
	assert.Equal(t, 25, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
}

func TestClientService_List_BeyondEnd(t *testing.T) {
	service, _ := newClientServiceFixture(t, 5)

	page, err := service.List(context.Background(), usecase.ListInput{PageNumber: 9, PageSize: 10})
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Equal(t, 5, page.TotalCount)
}

func TestClientService_List_InvalidPageInputs(t *testing.T) {
	service, _ := newClientServiceFixture(t, 5)

	_, err := service.List(context.Background(), usecase.ListInput{PageNumber: 0, PageSize: 10})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPagination)

	_, err = service.List(context.Background(), usecase.ListInput{PageNumber: 1, PageSize: -1})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPagination)
}

func TestClientService_List_Filtered(t *testing.T) {
	service, _ := newClientServiceFixture(t, 0)
	ctx := context.Background()

	for _, name := range []string{"Alpha", "Amber", "Beta"} {
		_, err := service.Create(ctx, usecase.ClientInput{Name: name})
		require.NoError(t, err)
	}

	page, err := service.List(ctx, usecase.ListInput{FirstLetter: "A", PageNumber: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Alpha", page.Items[0].Name)

	page, err = service.List(ctx, usecase.ListInput{SearchText: "mbe", PageNumber: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Amber", page.Items[0].Name)
}

func TestClientService_UpdateAndDelete(t *testing.T) {
	service, _ := newClientServiceFixture(t, 1)
	ctx := context.Background()

	page, err := service.List(ctx, usecase.ListInput{PageNumber: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	id := page.Items[0].ID

	updated, err := service.Update(ctx, usecase.ClientInput{ID: id, Name: "Renamed", Country: "Austria"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	require.NoError(t, service.Delete(ctx, id))

	err = service.Delete(ctx, id)
	assertAppError(t, err, "CLIENT_NOT_FOUND")
}
