package repository

import (
	"context"

	"curator/internal/domain/entity"
	"curator/internal/errors"
)

// ErrProductNotFound is returned when a product id is unknown to the store.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the product-listing source and the store behind the tag-update sink.
type ProductRepository interface {
	// ListProducts returns every product with its tagged locations.
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// SetProductLocations replaces the product's tagged locations with the
	// locations carrying the given canonical names.
	SetProductLocations(ctx context.Context, productID int64, locationNames []string) error
}
