package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"frota-backend/internal/models"
)

type DriverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) Create(ctx context.Context, driver *models.Driver) error {
	if err := r.db.WithContext(ctx).Create(driver).Error; err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (r *DriverRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	var driver models.Driver
	if err := r.db.WithContext(ctx).First(&driver, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *DriverRepository) FindByCPF(ctx context.Context, cpf string) (*models.Driver, error) {
	var driver models.Driver
	if err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&driver).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *DriverRepository) FindByCNH(ctx context.Context, cnh string) (*models.Driver, error) {
	var driver models.Driver
	if err := r.db.WithContext(ctx).Where("cnh = ?", cnh).First(&driver).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *DriverRepository) Save(ctx context.Context, driver *models.Driver) error {
	if err := r.db.WithContext(ctx).Save(driver).Error; err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (r *DriverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Driver{}, "id = ?", id).Error
}
