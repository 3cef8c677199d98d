package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"frota-backend/internal/models"
	"frota-backend/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// A pooled second connection would see an empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))
	return db
}

func testActor(role models.Role) Actor {
	return Actor{ID: uuid.New(), Role: role}
}

func seedAddress(t *testing.T, db *gorm.DB, placeID string) *models.Address {
	address := &models.Address{
		PlaceID:          placeID,
		FormattedAddress: "Av. Santos Dumont, 1000 - Aldeota, Fortaleza - CE",
		City:             "Fortaleza",
		State:            "CE",
		Country:          "Brasil",
		Latitude:         -3.7327,
		Longitude:        -38.5270,
	}
	require.NoError(t, db.Create(address).Error)
	return address
}

func seedDriver(t *testing.T, db *gorm.DB, cpf, cnh string, status models.DriverStatus) *models.Driver {
	driver := &models.Driver{
		Name:    "João da Silva",
		CPF:     cpf,
		CNH:     cnh,
		CNHType: models.CNHTypeB,
		Status:  status,
	}
	require.NoError(t, db.Create(driver).Error)
	return driver
}

func seedVehicle(t *testing.T, db *gorm.DB, plate, chassi, renavam string, status models.VehicleStatus) *models.Vehicle {
	vehicle := &models.Vehicle{
		Plate:       plate,
		Chassi:      chassi,
		Renavam:     renavam,
		Model:       "Onix",
		Brand:       "Chevrolet",
		VehicleType: models.VehicleTypeCar,
		Year:        2022,
		Color:       "Branco",
		Status:      status,
	}
	require.NoError(t, db.Create(vehicle).Error)
	return vehicle
}

func auditEntries(t *testing.T, db *gorm.DB, entity string, entityID uuid.UUID) []models.AuditLog {
	entries, err := repository.NewAuditLogRepository(db).FindByEntity(context.Background(), entity, entityID)
	require.NoError(t, err)
	return entries
}
