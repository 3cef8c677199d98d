package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"frota-backend/internal/models"
)

type AddressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) Create(ctx context.Context, address *models.Address) error {
	if err := r.db.WithContext(ctx).Create(address).Error; err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (r *AddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	var address models.Address
	if err := r.db.WithContext(ctx).First(&address, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *AddressRepository) FindByPlaceID(ctx context.Context, placeID string) (*models.Address, error) {
	var address models.Address
	if err := r.db.WithContext(ctx).Where("place_id = ?", placeID).First(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}
