package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleEmployee    Role = "EMPLOYEE"
	RoleCoordinator Role = "COORDINATOR"
	RoleManager     Role = "MANAGER"
	RoleAdmin       Role = "ADMIN"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	CPF          string     `gorm:"column:cpf;type:varchar(11);not null;uniqueIndex" json:"cpf"`
	Password     string     `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role       `gorm:"type:varchar(20);not null;default:EMPLOYEE" json:"role"`
	DepartmentID *uuid.UUID `gorm:"type:uuid;index" json:"departmentId"`
	SignInCount  int        `gorm:"not null;default:0" json:"signInCount"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
