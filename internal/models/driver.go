package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DriverStatus string

const (
	DriverAvailable DriverStatus = "AVAILABLE"
	DriverOnTrip    DriverStatus = "ON_TRIP"
	DriverInactive  DriverStatus = "INACTIVE"
)

type CNHType string

const (
	CNHTypeA  CNHType = "A"
	CNHTypeB  CNHType = "B"
	CNHTypeC  CNHType = "C"
	CNHTypeD  CNHType = "D"
	CNHTypeE  CNHType = "E"
	CNHTypeAB CNHType = "AB"
)

type Driver struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string       `gorm:"type:varchar(255);not null" json:"name"`
	CPF       string       `gorm:"column:cpf;type:varchar(11);not null;uniqueIndex" json:"cpf"`
	CNH       string       `gorm:"column:cnh;type:varchar(12);not null;uniqueIndex" json:"cnh"`
	CNHType   CNHType      `gorm:"column:cnh_type;type:varchar(5);not null" json:"cnhType"`
	CNHValid  *time.Time   `gorm:"column:cnh_valid" json:"cnhValid,omitempty"`
	Phone     string       `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Notes     string       `gorm:"type:text" json:"notes,omitempty"`
	Status    DriverStatus `gorm:"type:varchar(20);not null;default:AVAILABLE" json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (d *Driver) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
