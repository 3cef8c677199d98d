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

type AccountsService struct {
	userRepo *repository.UserRepository
}

func NewAccountsService(userRepo *repository.UserRepository) *AccountsService {
	return &AccountsService{userRepo: userRepo}
}

type CreateAccountRequest struct {
	Name         string  `json:"name" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	CPF          string  `json:"cpf" validate:"required,len=11"`
	Password     string  `json:"password" validate:"required,min=6"`
	DepartmentID *string `json:"departmentId" validate:"omitempty,uuid"`
}

func (s *AccountsService) Create(ctx context.Context, req *CreateAccountRequest) error {
	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return apperrors.Conflict("User with the same e-mail already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		CPF:      req.CPF,
		Password: hashed,
		Role:     models.RoleEmployee,
	}
	if req.DepartmentID != nil {
		departmentID, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			return apperrors.NotFound("Department not found")
		}
		user.DepartmentID = &departmentID
	}

	// CPF uniqueness rides on the store constraint, translated to Conflict
	// by the repository.
	return s.userRepo.Create(ctx, user)
}
