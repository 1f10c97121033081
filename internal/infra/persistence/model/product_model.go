package model

import (
	"time"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID                        int64           `gorm:"primaryKey"`
	Title                     string          `gorm:"type:varchar(255);not null"`
	SalesforceProductCategory string          `gorm:"type:varchar(255);index:idx_products_on_category"`
	IsActive                  bool            `gorm:"not null;default:true"`
	Status                    *string         `gorm:"type:varchar(50)"`
	LogoURL                   *string         `gorm:"type:text"`
	Locations                 []LocationModel `gorm:"many2many:product_locations;joinForeignKey:ProductID;joinReferences:LocationID"`
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductLocationModel is the join table between products and locations.
type ProductLocationModel struct {
	ProductID  int64 `gorm:"primaryKey"`
	LocationID int64 `gorm:"primaryKey;index:idx_product_locations_on_location_id"`
}

// TableName explicitly sets the table name for GORM.
func (ProductLocationModel) TableName() string {
	return "product_locations"
}
