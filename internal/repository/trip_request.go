package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"frota-backend/internal/models"
)

type TripRequestRepository struct {
	db *gorm.DB
}

func NewTripRequestRepository(db *gorm.DB) *TripRequestRepository {
	return &TripRequestRepository{db: db}
}

func (r *TripRequestRepository) Create(ctx context.Context, trip *models.TripRequest) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(trip).Error
}

func (r *TripRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.TripRequest, error) {
	var trip models.TripRequest
	if err := r.db.WithContext(ctx).First(&trip, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

// DecideIfPending applies the approval decision with a conditional update:
// the row only changes while its status is still PENDING. The returned count
// is zero when another approver won the race or the request was already
// decided.
func (r *TripRequestRepository) DecideIfPending(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.TripRequest{}).
		Where("id = ? AND status = ?", id, models.TripPending).
		Updates(fields)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
