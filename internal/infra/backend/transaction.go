package backend

import (
	"context"

	"curator/internal/domain/repository"
)

// transactionManager runs units of work directly: the backend commits every
// request on its own, so a failed unit leaves earlier writes in place.
type transactionManager struct {
	factory repository.RepositoryFactory
}

// NewTransactionManager creates a manager handing out backend repositories.
func NewTransactionManager(client *Client) repository.TransactionManager {
	return &transactionManager{factory: &repositoryFactory{client: client}}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}

type repositoryFactory struct {
	client *Client
}

func (f *repositoryFactory) NewLocationRepository() repository.LocationRepository {
	return NewLocationRepository(f.client)
}

func (f *repositoryFactory) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(f.client)
}

func (f *repositoryFactory) NewTitleRepository() repository.TitleRepository {
	return NewTitleRepository(f.client)
}
