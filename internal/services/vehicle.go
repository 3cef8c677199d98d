package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"frota-backend/internal/models"
	"frota-backend/internal/repository"
	"frota-backend/pkg/apperrors"
)

type VehiclesService struct {
	vehicleRepo *repository.VehicleRepository
	audit       *AuditRecorder
}

func NewVehiclesService(vehicleRepo *repository.VehicleRepository, audit *AuditRecorder) *VehiclesService {
	return &VehiclesService{
		vehicleRepo: vehicleRepo,
		audit:       audit,
	}
}

type CreateVehicleRequest struct {
	Plate           string     `json:"plate" validate:"required,min=7,max=8"`
	Brand           string     `json:"brand"`
	Model           string     `json:"model" validate:"required"`
	VehicleType     string     `json:"vehicleType" validate:"omitempty,oneof=CAR VAN BUS TRUCK MOTORCYCLE"`
	Year            int        `json:"year" validate:"required,min=1900"`
	Color           string     `json:"color" validate:"required"`
	Chassi          string     `json:"chassi" validate:"required,len=17"`
	Renavam         string     `json:"renavam" validate:"required,len=11"`
	Mileage         float64    `json:"mileage" validate:"omitempty,gte=0"`
	FuelConsumption float64    `json:"fuelConsumption" validate:"omitempty,gte=0"`
	FuelType        string     `json:"fuelType" validate:"omitempty,oneof=GASOLINE ETHANOL DIESEL FLEX ELECTRIC HYBRID"`
	Transmission    string     `json:"transmission" validate:"omitempty,oneof=MANUAL AUTOMATIC"`
	Notes           string     `json:"notes"`
	Status          string     `json:"status" validate:"omitempty,oneof=AVAILABLE IN_USE MAINTENANCE INACTIVE"`
	LastMaintenance *time.Time `json:"lastMaintenance"`
	NextMaintenance *time.Time `json:"nextMaintenance"`
}

type UpdateVehicleRequest struct {
	Plate           *string    `json:"plate" validate:"omitempty,min=7,max=8"`
	Brand           *string    `json:"brand"`
	Model           *string    `json:"model" validate:"omitempty,min=1"`
	VehicleType     *string    `json:"vehicleType" validate:"omitempty,oneof=CAR VAN BUS TRUCK MOTORCYCLE"`
	Year            *int       `json:"year" validate:"omitempty,min=1900"`
	Color           *string    `json:"color" validate:"omitempty,min=1"`
	Chassi          *string    `json:"chassi" validate:"omitempty,len=17"`
	Renavam         *string    `json:"renavam" validate:"omitempty,len=11"`
	Mileage         *float64   `json:"mileage" validate:"omitempty,gte=0"`
	FuelConsumption *float64   `json:"fuelConsumption" validate:"omitempty,gte=0"`
	FuelType        *string    `json:"fuelType" validate:"omitempty,oneof=GASOLINE ETHANOL DIESEL FLEX ELECTRIC HYBRID"`
	Transmission    *string    `json:"transmission" validate:"omitempty,oneof=MANUAL AUTOMATIC"`
	Notes           *string    `json:"notes"`
	Status          *string    `json:"status" validate:"omitempty,oneof=AVAILABLE IN_USE MAINTENANCE INACTIVE"`
	LastMaintenance *time.Time `json:"lastMaintenance"`
	NextMaintenance *time.Time `json:"nextMaintenance"`
}

func (s *VehiclesService) Create(ctx context.Context, req *CreateVehicleRequest, actor Actor) (*models.Vehicle, error) {
	if _, err := s.vehicleRepo.FindByPlate(ctx, req.Plate); err == nil {
		return nil, apperrors.Conflict("A vehicle with this plate already exists.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.vehicleRepo.FindByChassi(ctx, req.Chassi); err == nil {
		return nil, apperrors.Conflict("A vehicle with this chassi already exists.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.vehicleRepo.FindByRenavam(ctx, req.Renavam); err == nil {
		return nil, apperrors.Conflict("A vehicle with this renavam already exists.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	vehicle := &models.Vehicle{
		Plate:           req.Plate,
		Brand:           req.Brand,
		Model:           req.Model,
		VehicleType:     models.VehicleTypeCar,
		Year:            req.Year,
		Color:           req.Color,
		Chassi:          req.Chassi,
		Renavam:         req.Renavam,
		Mileage:         req.Mileage,
		FuelConsumption: req.FuelConsumption,
		FuelType:        models.FuelType(req.FuelType),
		Transmission:    models.TransmissionType(req.Transmission),
		Notes:           req.Notes,
		Status:          models.VehicleAvailable,
		LastMaintenance: req.LastMaintenance,
		NextMaintenance: req.NextMaintenance,
	}
	if req.VehicleType != "" {
		vehicle.VehicleType = models.VehicleType(req.VehicleType)
	}
	if req.Status != "" {
		vehicle.Status = models.VehicleStatus(req.Status)
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, models.AuditCreate, "Vehicle", vehicle.ID, nil, vehicle, actor); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *VehiclesService) FindByID(ctx context.Context, id string) (*models.Vehicle, error) {
	vehicleID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.NotFound("Vehicle not found")
	}

	vehicle, err := s.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Vehicle not found")
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *VehiclesService) FetchRecent(ctx context.Context, page int) ([]models.Vehicle, error) {
	return s.vehicleRepo.FetchRecent(ctx, page)
}

func (s *VehiclesService) Update(ctx context.Context, id string, req *UpdateVehicleRequest, actor Actor) (*models.Vehicle, error) {
	vehicle, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *vehicle

	if req.Plate != nil && *req.Plate != vehicle.Plate {
		if _, err := s.vehicleRepo.FindByPlate(ctx, *req.Plate); err == nil {
			return nil, apperrors.Conflict("Vehicle with this plate already exists.")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		vehicle.Plate = *req.Plate
	}
	if req.Chassi != nil && *req.Chassi != vehicle.Chassi {
		if _, err := s.vehicleRepo.FindByChassi(ctx, *req.Chassi); err == nil {
			return nil, apperrors.Conflict("Vehicle with this chassi already exists.")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		vehicle.Chassi = *req.Chassi
	}
	if req.Renavam != nil && *req.Renavam != vehicle.Renavam {
		if _, err := s.vehicleRepo.FindByRenavam(ctx, *req.Renavam); err == nil {
			return nil, apperrors.Conflict("Vehicle with this renavam already exists.")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		vehicle.Renavam = *req.Renavam
	}
	if req.Brand != nil {
		vehicle.Brand = *req.Brand
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.VehicleType != nil {
		vehicle.VehicleType = models.VehicleType(*req.VehicleType)
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.Color != nil {
		vehicle.Color = *req.Color
	}
	if req.Mileage != nil {
		vehicle.Mileage = *req.Mileage
	}
	if req.FuelConsumption != nil {
		vehicle.FuelConsumption = *req.FuelConsumption
	}
	if req.FuelType != nil {
		vehicle.FuelType = models.FuelType(*req.FuelType)
	}
	if req.Transmission != nil {
		vehicle.Transmission = models.TransmissionType(*req.Transmission)
	}
	if req.Notes != nil {
		vehicle.Notes = *req.Notes
	}
	if req.Status != nil {
		vehicle.Status = models.VehicleStatus(*req.Status)
	}
	if req.LastMaintenance != nil {
		vehicle.LastMaintenance = req.LastMaintenance
	}
	if req.NextMaintenance != nil {
		vehicle.NextMaintenance = req.NextMaintenance
	}

	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, models.AuditUpdate, "Vehicle", vehicle.ID, &old, vehicle, actor); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *VehiclesService) Delete(ctx context.Context, id string, actor Actor) error {
	vehicle, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.vehicleRepo.Delete(ctx, vehicle.ID); err != nil {
		return err
	}

	return s.audit.Record(ctx, models.AuditDelete, "Vehicle", vehicle.ID, vehicle, nil, actor)
}
