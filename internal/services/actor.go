package services

import (
	"github.com/google/uuid"

	"frota-backend/internal/models"
)

// Actor identifies the authenticated caller a mutation is attributed to.
// It is built from the verified token claims, never from the request body.
type Actor struct {
	ID           uuid.UUID
	Role         models.Role
	DepartmentID *uuid.UUID
}
