package backend

import (
	"context"
	"log/slog"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
	"curator/internal/errors"
)

const (
	locationsPath    = "/annotations/locations"
	productsPath     = "/annotations/get-products"
	titlesPath       = "/annotations/get-titles"
	setLocationsPath = "/annotations/set-locations"
	updateTitlePath  = "/annotations/update-title"
)

type locationRepository struct {
	client *Client
}

// NewLocationRepository lists locations through the backend.
func NewLocationRepository(client *Client) repository.LocationRepository {
	return &locationRepository{client: client}
}

func (repo *locationRepository) ListLocations(ctx context.Context) ([]entity.Location, error) {
	var resp locationsResponse
	if err := repo.client.getJSON(ctx, locationsPath, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	locations := make([]entity.Location, 0, len(resp.Locations))
	for i := range resp.Locations {
		locations = append(locations, resp.Locations[i].toDomain())
	}

	return locations, nil
}

type productRepository struct {
	client *Client
}

// NewProductRepository lists and re-tags products through the backend.
func NewProductRepository(client *Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (repo *productRepository) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var resp productsResponse
	if err := repo.client.getJSON(ctx, productsPath, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]entity.Product, 0, len(resp.Boards))
	for i := range resp.Boards {
		products = append(products, resp.Boards[i].toDomain())
	}

	return products, nil
}

func (repo *productRepository) SetProductLocations(ctx context.Context, productID int64, locationNames []string) error {
	if locationNames == nil {
		locationNames = []string{}
	}

	req := &setLocationsRequest{ID: productID, Locations: locationNames}
	if err := repo.client.postJSON(ctx, setLocationsPath, req, nil); err != nil {
		return errors.Wrapf(err, "failed to set locations of product %d", productID)
	}

	repo.client.log(ctx).Debug("Product locations submitted",
		slog.Int64("productID", productID),
		slog.Int("locations", len(locationNames)),
	)

	return nil
}

type titleRepository struct {
	client *Client
}

// NewTitleRepository lists and updates job titles through the backend.
func NewTitleRepository(client *Client) repository.TitleRepository {
	return &titleRepository{client: client}
}

func (repo *titleRepository) ListTitles(ctx context.Context) ([]*entity.Title, error) {
	var resp titlesResponse
	if err := repo.client.getJSON(ctx, titlesPath, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to list titles")
	}

	titles := make([]*entity.Title, 0, len(resp.Titles))
	for i := range resp.Titles {
		titles = append(titles, resp.Titles[i].toDomain())
	}

	return titles, nil
}

func (repo *titleRepository) UpdateTitle(ctx context.Context, title *entity.Title) error {
	req := &updateTitleRequest{
		ID:        title.ID,
		Active:    title.Active,
		Canonical: title.Canonical,
		AliasOfID: title.AliasOfID,
	}
	if err := repo.client.postJSON(ctx, updateTitlePath, req, nil); err != nil {
		return errors.Wrapf(err, "failed to update title %d", title.ID)
	}

	return nil
}
