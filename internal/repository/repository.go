package repository

import (
	"errors"

	"gorm.io/gorm"

	"frota-backend/pkg/apperrors"
)

// translateWriteError centralizes the storage-layer backstop: a unique
// violation that slipped past a service-level pre-check (two writers racing
// the same natural key) still comes back as a Conflict, not a 500.
func translateWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict("A record with the same unique value already exists")
	}
	return err
}
