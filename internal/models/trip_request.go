package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TripStatus string

const (
	TripPending  TripStatus = "PENDING"
	TripApproved TripStatus = "APPROVED"
	TripRejected TripStatus = "REJECTED"
)

type TripType string

const (
	TripOneWay    TripType = "ONE_WAY"
	TripRoundTrip TripType = "ROUND_TRIP"
)

// TripRequest leaves PENDING exactly once; APPROVED and REJECTED are terminal.
type TripRequest struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	StartAddressID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"startAddressId"`
	EndAddressID       *uuid.UUID `gorm:"type:uuid" json:"endAddressId"`
	TripType           TripType   `gorm:"type:varchar(20);not null" json:"tripType"`
	ScheduledDeparture time.Time  `gorm:"not null" json:"scheduledDeparture"`
	ScheduledReturn    *time.Time `json:"scheduledReturn"`
	Reason             string     `gorm:"type:text;not null" json:"reason"`
	Passengers         int        `gorm:"not null;default:1" json:"passengers"`
	Notes              string     `gorm:"type:text" json:"notes,omitempty"`
	Status             TripStatus `gorm:"type:varchar(20);not null;default:PENDING" json:"status"`
	RequesterID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"requesterId"`
	ApproverID         *uuid.UUID `gorm:"type:uuid" json:"approverId"`
	ApprovedAt         *time.Time `json:"approvedAt"`
	DriverID           *uuid.UUID `gorm:"type:uuid" json:"driverId"`
	VehicleID          *uuid.UUID `gorm:"type:uuid" json:"vehicleId"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`

	StartAddress *Address `gorm:"foreignKey:StartAddressID" json:"startAddress,omitempty"`
	EndAddress   *Address `gorm:"foreignKey:EndAddressID" json:"endAddress,omitempty"`
}

func (t *TripRequest) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
