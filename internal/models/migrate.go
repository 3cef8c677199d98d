package models

import "gorm.io/gorm"

// AutoMigrate creates and updates the schema for every entity. Departments
// reference nothing, users reference departments, trip requests reference
// addresses, so the order below keeps foreign keys satisfied.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Department{},
		&User{},
		&Address{},
		&Driver{},
		&Vehicle{},
		&TripRequest{},
		&AuditLog{},
	)
}
