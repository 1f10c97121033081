package postgres

import (
	"context"

	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"
	"curator/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// ListProducts returns every product with its tagged locations.
func (repo *productRepository) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var productModels []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Locations", func(db *gorm.DB) *gorm.DB {
			return db.Order("locations.id")
		}).
		Order("id").
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]entity.Product, 0, len(productModels))
	for _, m := range productModels {
		products = append(products, toProductDomain(m))
	}

	return products, nil
}

// SetProductLocations replaces the product's locations with those carrying the given canonical names.
// A name already on the product resolves to the locations it carries; any other name must match exactly one location.
func (repo *productRepository) SetProductLocations(ctx context.Context, productID int64, locationNames []string) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product model.ProductModel
		if err := tx.Preload("Locations").First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}

		candidates := []model.LocationModel{}
		if len(locationNames) > 0 {
			if err := tx.Where("canonical_name IN ?", locationNames).Order("id").Find(&candidates).Error; err != nil {
				return errors.Wrap(err, "failed to find locations by name")
			}
		}

		locations, err := resolveLocationNames(product.Locations, candidates, locationNames)
		if err != nil {
			return err
		}

		if err := tx.Model(&product).Association("Locations").Replace(locations); err != nil {
			if isForeignKeyConstraintViolation(err) {
				return domainerrors.ErrTagUpdateFailed.WrapMessage("invalid location reference")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to replace product locations")
		}

		return nil
	})
}

// resolveLocationNames maps canonical names onto location rows. Canonical names are
// not unique, so a name the product already carries keeps its current rows and an
// untagged name matching several rows is rejected rather than tagging them all.
func resolveLocationNames(current, candidates []model.LocationModel, names []string) ([]model.LocationModel, error) {
	byName := func(locations []model.LocationModel) map[string][]model.LocationModel {
		grouped := make(map[string][]model.LocationModel, len(locations))
		for _, l := range locations {
			grouped[l.CanonicalName] = append(grouped[l.CanonicalName], l)
		}

		return grouped
	}
	tagged := byName(current)
	matching := byName(candidates)

	resolved := make([]model.LocationModel, 0, len(names))
	seen := make(map[int64]struct{}, len(names))
	for _, name := range names {
		rows := tagged[name]
		if len(rows) == 0 {
			switch len(matching[name]) {
			case 0:
				return nil, domainerrors.ErrLocationNotFound.WithDetails(name)
			case 1:
				rows = matching[name]
			default:
				return nil, domainerrors.ErrTagUpdateFailed.WithDetails("ambiguous location name " + name)
			}
		}
		for _, l := range rows {
			if _, ok := seen[l.ID]; ok {
				continue
			}
			seen[l.ID] = struct{}{}
			resolved = append(resolved, l)
		}
	}

	return resolved, nil
}

// toProductDomain converts a GORM ProductModel to a domain Product.
func toProductDomain(data *model.ProductModel) entity.Product {
	product := entity.Product{
		ID:        data.ID,
		Title:     data.Title,
		Category:  data.SalesforceProductCategory,
		IsActive:  data.IsActive,
		Status:    derefString(data.Status),
		LogoURL:   derefString(data.LogoURL),
		Locations: make([]entity.LocationTag, 0, len(data.Locations)),
	}
	for _, l := range data.Locations {
		product.Locations = append(product.Locations, entity.LocationTag{
			MapboxID:      derefString(l.MapboxID),
			CanonicalName: l.CanonicalName,
		})
	}

	return product
}
