package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"frota-backend/internal/models"
)

const recentVehiclesPerPage = 20

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) FindByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).Where("plate = ?", plate).First(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) FindByChassi(ctx context.Context, chassi string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).Where("chassi = ?", chassi).First(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) FindByRenavam(ctx context.Context, renavam string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).Where("renavam = ?", renavam).First(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// FetchRecent pages through vehicles newest first, 20 per page.
func (r *VehicleRepository) FetchRecent(ctx context.Context, page int) ([]models.Vehicle, error) {
	if page < 1 {
		page = 1
	}
	var vehicles []models.Vehicle
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(recentVehiclesPerPage).
		Offset((page - 1) * recentVehiclesPerPage).
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) Save(ctx context.Context, vehicle *models.Vehicle) error {
	if err := r.db.WithContext(ctx).Save(vehicle).Error; err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Vehicle{}, "id = ?", id).Error
}
