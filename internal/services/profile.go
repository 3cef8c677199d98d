package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"frota-backend/internal/models"
	"frota-backend/internal/repository"
	"frota-backend/pkg/apperrors"
)

// ProfileService is a thin wrapper over user rows. The password hash never
// leaves it: the model strips the field on serialization.
type ProfileService struct {
	userRepo *repository.UserRepository
}

func NewProfileService(userRepo *repository.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

type UpdateProfileRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=3"`
	DepartmentID *string `json:"departmentId" validate:"omitempty,uuid"`
}

func (s *ProfileService) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found.")
		}
		return nil, err
	}
	return user, nil
}

func (s *ProfileService) Update(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*models.User, error) {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.DepartmentID != nil {
		departmentID, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			return nil, apperrors.NotFound("Department not found")
		}
		user.DepartmentID = &departmentID
		user.Department = nil
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return s.FindByID(ctx, id)
}
