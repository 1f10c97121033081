package model

import (
	"time"
)

// TitleModel is the GORM-specific struct for the 'job_titles' table.
type TitleModel struct {
	ID          int64   `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Active      bool    `gorm:"not null;default:true"`
	Canonical   bool    `gorm:"not null;default:false"`
	AliasOfID   *int64  `gorm:"index:idx_job_titles_on_alias_of_id;check:chk_job_titles_not_self_alias,alias_of_id <> id"`
	Frequency   int     `gorm:"not null;default:0"`
	JobFunction *string `gorm:"type:varchar(255)"`
	Industry    *string `gorm:"type:varchar(255)"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TitleModel) TableName() string {
	return "job_titles"
}
