package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"frota-backend/internal/models"
	"frota-backend/internal/repository"
)

// AuditRecorder appends one change-history row per successful mutation.
// A failed append surfaces to the caller; the mutation it describes is not
// rolled back.
type AuditRecorder struct {
	auditRepo *repository.AuditLogRepository
}

func NewAuditRecorder(auditRepo *repository.AuditLogRepository) *AuditRecorder {
	return &AuditRecorder{auditRepo: auditRepo}
}

func (a *AuditRecorder) Record(ctx context.Context, action models.AuditAction, entity string, entityID uuid.UUID, oldData, newData interface{}, actor Actor) error {
	entry := &models.AuditLog{
		Action:       action,
		Entity:       entity,
		EntityID:     entityID,
		UserID:       actor.ID,
		DepartmentID: actor.DepartmentID,
	}

	if oldData != nil {
		raw, err := json.Marshal(oldData)
		if err != nil {
			return err
		}
		entry.OldData = datatypes.JSON(raw)
	}
	if newData != nil {
		raw, err := json.Marshal(newData)
		if err != nil {
			return err
		}
		entry.NewData = datatypes.JSON(raw)
	}

	return a.auditRepo.Append(ctx, entry)
}
