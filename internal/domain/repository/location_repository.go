// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"curator/internal/domain/entity"
)

// LocationRepository is the location-listing source.
type LocationRepository interface {
	// ListLocations returns every location record, approved or not.
	ListLocations(ctx context.Context) ([]entity.Location, error)
}
