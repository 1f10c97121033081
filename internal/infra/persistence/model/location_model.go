package model

import (
	"time"

	"gorm.io/datatypes"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
type LocationModel struct {
	ID                int64                        `gorm:"primaryKey"`
	MapboxID          *string                      `gorm:"type:varchar(255);index:idx_locations_on_mapbox_id"`
	CanonicalName     string                       `gorm:"type:varchar(255);not null;index:idx_locations_on_canonical_name"`
	MapboxText        string                       `gorm:"type:varchar(255)"`
	MapboxPlacename   string                       `gorm:"type:text"`
	MapboxWithinID    *int64                       `gorm:"index:idx_locations_on_mapbox_within_id"`
	Approved          bool                         `gorm:"not null;default:false"`
	MapboxContext     datatypes.JSONSlice[string]  `gorm:"type:jsonb"`
	MapboxBoundingBox datatypes.JSONSlice[float64] `gorm:"type:jsonb"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
