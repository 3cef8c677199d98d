package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Department rows are seeded and read-mostly.
type Department struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Code      string    `gorm:"type:varchar(100)" json:"code"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	Priority  int       `gorm:"not null;default:0" json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d *Department) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// DepartmentSummary is the projection returned by the public listing.
type DepartmentSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Code     string    `json:"code"`
	Priority int       `json:"priority"`
}
