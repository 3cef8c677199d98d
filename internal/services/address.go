package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"frota-backend/internal/models"
	"frota-backend/internal/repository"
	"frota-backend/pkg/apperrors"
	"frota-backend/pkg/geocode"
)

type AddressesService struct {
	addressRepo *repository.AddressRepository
	audit       *AuditRecorder
	geocoder    *geocode.Client
}

func NewAddressesService(addressRepo *repository.AddressRepository, audit *AuditRecorder, geocoder *geocode.Client) *AddressesService {
	return &AddressesService{
		addressRepo: addressRepo,
		audit:       audit,
		geocoder:    geocoder,
	}
}

type CreateAddressRequest struct {
	PlaceID          string  `json:"placeId" validate:"required"`
	FormattedAddress string  `json:"formattedAddress" validate:"required"`
	Street           string  `json:"street"`
	Number           string  `json:"number"`
	Complement       string  `json:"complement"`
	Neighborhood     string  `json:"neighborhood"`
	City             string  `json:"city" validate:"required"`
	State            string  `json:"state" validate:"required"`
	PostalCode       string  `json:"postalCode"`
	Country          string  `json:"country" validate:"required"`
	Latitude         float64 `json:"latitude" validate:"required"`
	Longitude        float64 `json:"longitude" validate:"required"`
}

func (s *AddressesService) Create(ctx context.Context, req *CreateAddressRequest, actor Actor) (*models.Address, error) {
	_, err := s.addressRepo.FindByPlaceID(ctx, req.PlaceID)
	if err == nil {
		return nil, apperrors.Conflict("Endereço já cadastrado.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	address := &models.Address{
		PlaceID:          req.PlaceID,
		FormattedAddress: req.FormattedAddress,
		Street:           req.Street,
		Number:           req.Number,
		Complement:       req.Complement,
		Neighborhood:     req.Neighborhood,
		City:             req.City,
		State:            req.State,
		PostalCode:       req.PostalCode,
		Country:          req.Country,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
	}
	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, models.AuditCreate, "Address", address.ID, nil, address, actor); err != nil {
		return nil, err
	}
	return address, nil
}

// Search proxies the geocoding query to the external lookup service.
func (s *AddressesService) Search(ctx context.Context, query string) ([]geocode.Result, error) {
	return s.geocoder.Search(ctx, query)
}

func (s *AddressesService) FindByID(ctx context.Context, id string) (*models.Address, error) {
	addressID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.NotFound("Endereço não encontrado")
	}

	address, err := s.addressRepo.FindByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Endereço não encontrado")
		}
		return nil, err
	}
	return address, nil
}
