package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"timesheet/internal/domain/entity"
	"timesheet/internal/domain/repository"
	"timesheet/internal/domain/service"
	"timesheet/internal/errors"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeTxManager runs the callback against a fixed factory without any real
// transaction semantics.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// fakeRepoFactory hands out the in-memory repositories.
type fakeRepoFactory struct {
	members    repository.TeamMemberRepository
	clients    repository.ClientRepository
	projects   repository.ProjectRepository
	categories repository.CategoryRepository
	activities repository.ActivityRepository
}

func (f *fakeRepoFactory) TeamMemberRepo() repository.TeamMemberRepository { return f.members }
func (f *fakeRepoFactory) ClientRepo() repository.ClientRepository         { return f.clients }
func (f *fakeRepoFactory) ProjectRepo() repository.ProjectRepository       { return f.projects }
func (f *fakeRepoFactory) CategoryRepo() repository.CategoryRepository     { return f.categories }
func (f *fakeRepoFactory) ActivityRepo() repository.ActivityRepository     { return f.activities }

// fakeMemberStore is a mutex-guarded in-memory TeamMemberRepository. Its
// Create enforces the unique constraints atomically, which lets concurrency
// tests exercise the same race the database backstop covers.
type fakeMemberStore struct {
	mu      sync.Mutex
	members map[uuid.UUID]*entity.TeamMember

	failCreateWith error
}

func newFakeMemberStore() *fakeMemberStore {
	return &fakeMemberStore{members: make(map[uuid.UUID]*entity.TeamMember)}
}

func (s *fakeMemberStore) GetByID(_ context.Context, id uuid.UUID) (*entity.TeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, ok := s.members[id]
	if !ok {
		return nil, repository.ErrTeamMemberNotFound
	}

	return cloneMember(member), nil
}

func (s *fakeMemberStore) FindByUsername(_ context.Context, username string) (*entity.TeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, member := range s.members {
		if member.Username == username {
			return cloneMember(member), nil
		}
	}

	return nil, repository.ErrTeamMemberNotFound
}

func (s *fakeMemberStore) FindByEmail(_ context.Context, email string) (*entity.TeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, member := range s.members {
		if member.Email == email {
			return cloneMember(member), nil
		}
	}

	return nil, repository.ErrTeamMemberNotFound
}

func (s *fakeMemberStore) GetAll(_ context.Context, filter repository.Filter) ([]*entity.TeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.TeamMember
	for _, member := range s.members {
		if filter.Matches(member.Username) {
			out = append(out, cloneMember(member))
		}
	}

	return out, nil
}

func (s *fakeMemberStore) Create(_ context.Context, member *entity.TeamMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failCreateWith != nil {
		return s.failCreateWith
	}

	for _, existing := range s.members {
		if existing.Username == member.Username {
			return repository.ErrUsernameConflict
		}
		if existing.Email == member.Email {
			return repository.ErrEmailConflict
		}
	}

	member.ID = uuid.New()
	s.members[member.ID] = cloneMember(member)

	return nil
}

func (s *fakeMemberStore) Update(_ context.Context, member *entity.TeamMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[member.ID]; !ok {
		return repository.ErrTeamMemberNotFound
	}
	s.members[member.ID] = cloneMember(member)

	return nil
}

func (s *fakeMemberStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[id]; !ok {
		return false, nil
	}
	delete(s.members, id)

	return true, nil
}

func (s *fakeMemberStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.members)
}

func cloneMember(member *entity.TeamMember) *entity.TeamMember {
	cloned := *member

	return &cloned
}

// fakeTokenService issues deterministic tokens, or fails when primed.
type fakeTokenService struct {
	failWith error
}

func (s *fakeTokenService) Issue(member *entity.TeamMember) (string, error) {
	if s.failWith != nil {
		return "", s.failWith
	}

	return "token-" + member.ID.String(), nil
}

func (s *fakeTokenService) Validate(string) (*service.Claims, error) {
	return nil, errors.New("not implemented")
}
