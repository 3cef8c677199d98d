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

type DriversService struct {
	driverRepo *repository.DriverRepository
	audit      *AuditRecorder
}

func NewDriversService(driverRepo *repository.DriverRepository, audit *AuditRecorder) *DriversService {
	return &DriversService{
		driverRepo: driverRepo,
		audit:      audit,
	}
}

type CreateDriverRequest struct {
	Name     string     `json:"name" validate:"required"`
	CPF      string     `json:"cpf" validate:"required,len=11"`
	CNH      string     `json:"cnh" validate:"required,min=11,max=12"`
	CNHType  string     `json:"cnhType" validate:"required,oneof=A B C D E AB"`
	CNHValid *time.Time `json:"cnhValid"`
	Phone    string     `json:"phone"`
	Notes    string     `json:"notes"`
	Status   string     `json:"status" validate:"omitempty,oneof=AVAILABLE ON_TRIP INACTIVE"`
}

type UpdateDriverRequest struct {
	Name     *string    `json:"name" validate:"omitempty,min=1"`
	CPF      *string    `json:"cpf" validate:"omitempty,len=11"`
	CNH      *string    `json:"cnh" validate:"omitempty,min=11,max=12"`
	CNHType  *string    `json:"cnhType" validate:"omitempty,oneof=A B C D E AB"`
	CNHValid *time.Time `json:"cnhValid"`
	Phone    *string    `json:"phone"`
	Notes    *string    `json:"notes"`
	Status   *string    `json:"status" validate:"omitempty,oneof=AVAILABLE ON_TRIP INACTIVE"`
}

func (s *DriversService) Create(ctx context.Context, req *CreateDriverRequest, actor Actor) (*models.Driver, error) {
	// One lookup per natural key, in order; the first hit wins.
	if _, err := s.driverRepo.FindByCPF(ctx, req.CPF); err == nil {
		return nil, apperrors.Conflict("A driver with this CPF already exists.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.driverRepo.FindByCNH(ctx, req.CNH); err == nil {
		return nil, apperrors.Conflict("A driver with this CNH already exists.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	driver := &models.Driver{
		Name:     req.Name,
		CPF:      req.CPF,
		CNH:      req.CNH,
		CNHType:  models.CNHType(req.CNHType),
		CNHValid: req.CNHValid,
		Phone:    req.Phone,
		Notes:    req.Notes,
		Status:   models.DriverAvailable,
	}
	if req.Status != "" {
		driver.Status = models.DriverStatus(req.Status)
	}
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, models.AuditCreate, "Driver", driver.ID, nil, driver, actor); err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *DriversService) FindByID(ctx context.Context, id string) (*models.Driver, error) {
	driverID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.NotFound("Driver not found")
	}

	driver, err := s.driverRepo.FindByID(ctx, driverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Driver not found")
		}
		return nil, err
	}
	return driver, nil
}

func (s *DriversService) Update(ctx context.Context, id string, req *UpdateDriverRequest, actor Actor) (*models.Driver, error) {
	driver, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *driver

	if req.CPF != nil && *req.CPF != driver.CPF {
		if _, err := s.driverRepo.FindByCPF(ctx, *req.CPF); err == nil {
			return nil, apperrors.Conflict("Driver with this CPF already exists.")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		driver.CPF = *req.CPF
	}
	if req.CNH != nil && *req.CNH != driver.CNH {
		if _, err := s.driverRepo.FindByCNH(ctx, *req.CNH); err == nil {
			return nil, apperrors.Conflict("Driver with this CNH already exists.")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		driver.CNH = *req.CNH
	}
	if req.Name != nil {
		driver.Name = *req.Name
	}
	if req.CNHType != nil {
		driver.CNHType = models.CNHType(*req.CNHType)
	}
	if req.CNHValid != nil {
		driver.CNHValid = req.CNHValid
	}
	if req.Phone != nil {
		driver.Phone = *req.Phone
	}
	if req.Notes != nil {
		driver.Notes = *req.Notes
	}
	if req.Status != nil {
		driver.Status = models.DriverStatus(*req.Status)
	}

	if err := s.driverRepo.Save(ctx, driver); err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, models.AuditUpdate, "Driver", driver.ID, &old, driver, actor); err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *DriversService) Delete(ctx context.Context, id string, actor Actor) error {
	driver, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.driverRepo.Delete(ctx, driver.ID); err != nil {
		return err
	}

	return s.audit.Record(ctx, models.AuditDelete, "Driver", driver.ID, driver, nil, actor)
}
