// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
	"curator/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the domain.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// ListLocations returns every location with its parent's geocoder id and name resolved.
func (repo *locationRepository) ListLocations(ctx context.Context) ([]entity.Location, error) {
	var locationModels []*model.LocationModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	byID := make(map[int64]*model.LocationModel, len(locationModels))
	for _, m := range locationModels {
		byID[m.ID] = m
	}

	locations := make([]entity.Location, 0, len(locationModels))
	for _, m := range locationModels {
		locations = append(locations, toLocationDomain(m, byID[derefInt64(m.MapboxWithinID)]))
	}

	return locations, nil
}

// toLocationDomain converts a GORM LocationModel to a domain Location.
func toLocationDomain(data, parent *model.LocationModel) entity.Location {
	loc := entity.Location{
		ID:            data.ID,
		MapboxID:      derefString(data.MapboxID),
		CanonicalName: data.CanonicalName,
		WithinID:      data.MapboxWithinID,
		Approved:      data.Approved,
	}
	if data.MapboxContext != nil {
		loc.Context = []string(data.MapboxContext)
	}
	if data.MapboxBoundingBox != nil {
		loc.BoundingBox = []float64(data.MapboxBoundingBox)
	}
	if data.MapboxWithinID != nil && parent != nil {
		loc.ParentMapboxID = derefString(parent.MapboxID)
		loc.ParentName = parent.CanonicalName
	}

	return loc
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}

	return *v
}
