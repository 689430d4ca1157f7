package repository

import "context"

// TransactionManager runs multi-repository writes atomically.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories that share one transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewCardRepository() CardRepository
}
