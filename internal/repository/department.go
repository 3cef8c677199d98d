package repository

import (
	"context"

	"gorm.io/gorm"

	"frota-backend/internal/models"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// FindAllActive returns the public projection of active departments,
// highest priority first.
func (r *DepartmentRepository) FindAllActive(ctx context.Context) ([]models.DepartmentSummary, error) {
	var departments []models.DepartmentSummary
	err := r.db.WithContext(ctx).
		Model(&models.Department{}).
		Select("id", "name", "code", "priority").
		Where("is_active = ?", true).
		Order("priority desc").
		Find(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}
