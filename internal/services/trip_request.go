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

type TripRequestsService struct {
	tripRepo    *repository.TripRequestRepository
	addressRepo *repository.AddressRepository
	driverRepo  *repository.DriverRepository
	vehicleRepo *repository.VehicleRepository
}

func NewTripRequestsService(
	tripRepo *repository.TripRequestRepository,
	addressRepo *repository.AddressRepository,
	driverRepo *repository.DriverRepository,
	vehicleRepo *repository.VehicleRepository,
) *TripRequestsService {
	return &TripRequestsService{
		tripRepo:    tripRepo,
		addressRepo: addressRepo,
		driverRepo:  driverRepo,
		vehicleRepo: vehicleRepo,
	}
}

type CreateTripRequestRequest struct {
	StartAddressID     string     `json:"startAddressId" validate:"required"`
	EndAddressID       *string    `json:"endAddressId"`
	TripType           string     `json:"tripType" validate:"required,oneof=ONE_WAY ROUND_TRIP"`
	ScheduledDeparture time.Time  `json:"scheduledDeparture" validate:"required"`
	ScheduledReturn    *time.Time `json:"scheduledReturn"`
	Reason             string     `json:"reason" validate:"required"`
	Passengers         int        `json:"passengers" validate:"omitempty,min=1"`
	Notes              string     `json:"notes"`
	Status             string     `json:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
	RequesterID        string     `json:"requesterId" validate:"required,uuid"`
	ApproverID         *string    `json:"approverId" validate:"omitempty,uuid"`
	ApprovedAt         *time.Time `json:"approvedAt"`
	DriverID           *string    `json:"driverId" validate:"omitempty,uuid"`
	VehicleID          *string    `json:"vehicleId" validate:"omitempty,uuid"`
}

type ValidateTripRequestRequest struct {
	Status     string  `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	ApproverID string  `json:"approverId" validate:"required"`
	DriverID   *string `json:"driverId"`
	VehicleID  *string `json:"vehicleId"`
}

func (s *TripRequestsService) Create(ctx context.Context, req *CreateTripRequestRequest) (*models.TripRequest, error) {
	startID, err := uuid.Parse(req.StartAddressID)
	if err != nil {
		return nil, apperrors.NotFound("Endereço de partida não encontrado")
	}
	if _, err := s.addressRepo.FindByID(ctx, startID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Endereço de partida não encontrado")
		}
		return nil, err
	}

	var endID *uuid.UUID
	if req.EndAddressID != nil {
		parsed, err := uuid.Parse(*req.EndAddressID)
		if err != nil {
			return nil, apperrors.NotFound("Endereço de destino inválido")
		}
		if _, err := s.addressRepo.FindByID(ctx, parsed); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("Endereço de destino não encontrado")
			}
			return nil, err
		}
		endID = &parsed
	}

	requesterID, err := uuid.Parse(req.RequesterID)
	if err != nil {
		return nil, apperrors.NotFound("Solicitante não encontrado")
	}

	trip := &models.TripRequest{
		StartAddressID:     startID,
		EndAddressID:       endID,
		TripType:           models.TripType(req.TripType),
		ScheduledDeparture: req.ScheduledDeparture,
		ScheduledReturn:    req.ScheduledReturn,
		Reason:             req.Reason,
		Passengers:         req.Passengers,
		Notes:              req.Notes,
		Status:             models.TripPending,
		RequesterID:        requesterID,
	}
	if trip.Passengers == 0 {
		trip.Passengers = 1
	}
	if req.Status != "" {
		trip.Status = models.TripStatus(req.Status)
	}

	// Pre-decided requests (imports, backfills) may arrive with the
	// decision fields already filled in.
	if req.ApproverID != nil {
		parsed, err := uuid.Parse(*req.ApproverID)
		if err != nil {
			return nil, apperrors.NotFound("Aprovador não encontrado")
		}
		trip.ApproverID = &parsed
	}
	if req.ApprovedAt != nil {
		trip.ApprovedAt = req.ApprovedAt
	}
	if req.DriverID != nil {
		parsed, err := uuid.Parse(*req.DriverID)
		if err != nil {
			return nil, apperrors.NotFound("Motorista não encontrado")
		}
		trip.DriverID = &parsed
	}
	if req.VehicleID != nil {
		parsed, err := uuid.Parse(*req.VehicleID)
		if err != nil {
			return nil, apperrors.NotFound("Veículo não encontrado")
		}
		trip.VehicleID = &parsed
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *TripRequestsService) FindByID(ctx context.Context, id string) (*models.TripRequest, error) {
	tripID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.NotFound("Solicitação de viagem não encontrada")
	}

	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Solicitação de viagem não encontrada")
		}
		return nil, err
	}
	return trip, nil
}

// Validate applies the single legal transition out of PENDING. The guard is
// a conditional update, so of two racing approvers exactly one wins; the
// other gets Forbidden. Approving does not flip the driver or vehicle to a
// busy status.
func (s *TripRequestsService) Validate(ctx context.Context, id string, req *ValidateTripRequestRequest, actor Actor) (*models.TripRequest, error) {
	tripID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.NotFound("Solicitação de viagem ou aprovador não encontrado")
	}
	approverID, err := uuid.Parse(req.ApproverID)
	if err != nil {
		return nil, apperrors.NotFound("Solicitação de viagem ou aprovador não encontrado")
	}

	if actor.Role != models.RoleAdmin {
		return nil, apperrors.Forbidden("Somente administradores podem validar solicitações.")
	}

	if _, err := s.tripRepo.FindByID(ctx, tripID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Solicitação de viagem não encontrada")
		}
		return nil, err
	}

	fields := map[string]interface{}{
		"status":      models.TripStatus(req.Status),
		"approver_id": approverID,
		"approved_at": time.Now(),
	}

	if req.DriverID != nil {
		driverID, err := uuid.Parse(*req.DriverID)
		if err != nil {
			return nil, apperrors.NotFound("Motorista não encontrado ou indisponível")
		}
		driver, err := s.driverRepo.FindByID(ctx, driverID)
		if err != nil || driver.Status != models.DriverAvailable {
			return nil, apperrors.NotFound("Motorista não encontrado ou indisponível")
		}
		fields["driver_id"] = driverID
	}

	if req.VehicleID != nil {
		vehicleID, err := uuid.Parse(*req.VehicleID)
		if err != nil {
			return nil, apperrors.NotFound("Veículo não encontrado ou indisponível")
		}
		vehicle, err := s.vehicleRepo.FindByID(ctx, vehicleID)
		if err != nil || vehicle.Status != models.VehicleAvailable {
			return nil, apperrors.NotFound("Veículo não encontrado ou indisponível")
		}
		fields["vehicle_id"] = vehicleID
	}

	affected, err := s.tripRepo.DecideIfPending(ctx, tripID, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperrors.Forbidden("A solicitação já foi validada anteriormente.")
	}

	return s.tripRepo.FindByID(ctx, tripID)
}
