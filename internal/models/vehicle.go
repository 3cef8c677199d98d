package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "AVAILABLE"
	VehicleInUse       VehicleStatus = "IN_USE"
	VehicleMaintenance VehicleStatus = "MAINTENANCE"
	VehicleInactive    VehicleStatus = "INACTIVE"
)

type VehicleType string

const (
	VehicleTypeCar        VehicleType = "CAR"
	VehicleTypeVan        VehicleType = "VAN"
	VehicleTypeBus        VehicleType = "BUS"
	VehicleTypeTruck      VehicleType = "TRUCK"
	VehicleTypeMotorcycle VehicleType = "MOTORCYCLE"
)

type FuelType string

const (
	FuelGasoline FuelType = "GASOLINE"
	FuelEthanol  FuelType = "ETHANOL"
	FuelDiesel   FuelType = "DIESEL"
	FuelFlex     FuelType = "FLEX"
	FuelElectric FuelType = "ELECTRIC"
	FuelHybrid   FuelType = "HYBRID"
)

type TransmissionType string

const (
	TransmissionManual    TransmissionType = "MANUAL"
	TransmissionAutomatic TransmissionType = "AUTOMATIC"
)

type Vehicle struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Plate           string           `gorm:"type:varchar(8);not null;uniqueIndex" json:"plate"`
	Chassi          string           `gorm:"type:varchar(17);not null;uniqueIndex" json:"chassi"`
	Renavam         string           `gorm:"type:varchar(11);not null;uniqueIndex" json:"renavam"`
	Brand           string           `gorm:"type:varchar(100)" json:"brand,omitempty"`
	Model           string           `gorm:"type:varchar(100);not null" json:"model"`
	VehicleType     VehicleType      `gorm:"type:varchar(20);not null;default:CAR" json:"vehicleType"`
	Year            int              `gorm:"not null" json:"year"`
	Color           string           `gorm:"type:varchar(50);not null" json:"color"`
	Mileage         float64          `gorm:"not null;default:0" json:"mileage"`
	FuelConsumption float64          `json:"fuelConsumption,omitempty"`
	FuelType        FuelType         `gorm:"type:varchar(20)" json:"fuelType,omitempty"`
	Transmission    TransmissionType `gorm:"type:varchar(20)" json:"transmission,omitempty"`
	Notes           string           `gorm:"type:text" json:"notes,omitempty"`
	Status          VehicleStatus    `gorm:"type:varchar(20);not null;default:AVAILABLE" json:"status"`
	LastMaintenance *time.Time       `json:"lastMaintenance,omitempty"`
	NextMaintenance *time.Time       `json:"nextMaintenance,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
