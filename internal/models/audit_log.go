package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditAction string

const (
	AuditCreate AuditAction = "CREATE"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
)

// AuditLog is append-only; rows are never updated or deleted.
type AuditLog struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Action       AuditAction    `gorm:"type:varchar(10);not null" json:"action"`
	Entity       string         `gorm:"type:varchar(50);not null;index" json:"entity"`
	EntityID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"entityId"`
	OldData      datatypes.JSON `json:"oldData,omitempty"`
	NewData      datatypes.JSON `json:"newData,omitempty"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	DepartmentID *uuid.UUID     `gorm:"type:uuid" json:"departmentId"`
	CreatedAt    time.Time      `json:"createdAt"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
