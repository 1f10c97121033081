package repository

import "context"

// TransactionManager defines the interface for managing store transactions.
// This allows the use case layer to group writes without depending on a specific driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// Stores without transactions run fn directly against their regular repositories.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	// NewLocationRepository returns a LocationRepository bound to the current transaction.
	NewLocationRepository() LocationRepository

	// NewProductRepository returns a ProductRepository bound to the current transaction.
	NewProductRepository() ProductRepository

	// NewTitleRepository returns a TitleRepository bound to the current transaction.
	NewTitleRepository() TitleRepository
}
