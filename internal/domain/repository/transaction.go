package repository

import "context"

// TransactionManager is the Unit of Work boundary: one Execute call owns one
// logical transaction scope for one business operation.
type TransactionManager interface {
	// Execute runs fn within a single database transaction. Every repository
	// obtained from the factory shares that transaction. An error (or panic)
	// inside fn rolls back all pending writes; normal completion commits them
	// as one atomic unit. No per-operation retry state is kept.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to the transaction
// currently in flight, so multi-step writes stay in one atomic scope.
type RepositoryFactory interface {
	// TeamMemberRepo returns the team-member directory bound to the current transaction.
	TeamMemberRepo() TeamMemberRepository

	// ClientRepo returns a ClientRepository bound to the current transaction.
	ClientRepo() ClientRepository

	// ProjectRepo returns a ProjectRepository bound to the current transaction.
	ProjectRepo() ProjectRepository

	// CategoryRepo returns a CategoryRepository bound to the current transaction.
	CategoryRepo() CategoryRepository

	// ActivityRepo returns an ActivityRepository bound to the current transaction.
	ActivityRepo() ActivityRepository
}
