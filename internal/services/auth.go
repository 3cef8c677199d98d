package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"frota-backend/internal/repository"
	"frota-backend/pkg/apperrors"
	"frota-backend/pkg/jwt"
)

type AuthService struct {
	userRepo *repository.UserRepository
	jwtUtil  *jwt.JWTUtil
}

func NewAuthService(userRepo *repository.UserRepository, jwtUtil *jwt.JWTUtil) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Authenticate verifies credentials and issues a session token. An unknown
// email and a wrong password answer with the same message so the response
// shape never reveals which check failed.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.Unauthorized("User credentials do not match")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.Unauthorized("User credentials do not match")
	}

	// Counter and timestamp are persisted before the token is issued.
	updated, err := s.userRepo.RecordSignIn(ctx, user.ID)
	if err != nil {
		return "", err
	}

	return s.jwtUtil.GenerateToken(updated)
}

// HashPassword is the one-way function applied to every stored password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
