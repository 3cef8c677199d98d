package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Address is created on demand from a geocoding result and never updated.
type Address struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PlaceID          string    `gorm:"column:place_id;type:varchar(255);not null;uniqueIndex" json:"placeId"`
	FormattedAddress string    `gorm:"type:text;not null" json:"formattedAddress"`
	Street           string    `gorm:"type:varchar(255)" json:"street,omitempty"`
	Number           string    `gorm:"type:varchar(20)" json:"number,omitempty"`
	Complement       string    `gorm:"type:varchar(255)" json:"complement,omitempty"`
	Neighborhood     string    `gorm:"type:varchar(255)" json:"neighborhood,omitempty"`
	City             string    `gorm:"type:varchar(255);not null" json:"city"`
	State            string    `gorm:"type:varchar(100);not null" json:"state"`
	PostalCode       string    `gorm:"type:varchar(20)" json:"postalCode,omitempty"`
	Country          string    `gorm:"type:varchar(100);not null" json:"country"`
	Latitude         float64   `gorm:"not null" json:"latitude"`
	Longitude        float64   `gorm:"not null" json:"longitude"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
