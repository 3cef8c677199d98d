package services

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frota-backend/internal/models"
	"frota-backend/internal/repository"
	"frota-backend/pkg/apperrors"
	"frota-backend/pkg/jwt"
)

func setupAuthService(t *testing.T) (*AuthService, *repository.UserRepository, *jwt.JWTUtil) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	jwtUtil := jwt.NewFromKeys(key, time.Hour)

	return NewAuthService(userRepo, jwtUtil), userRepo, jwtUtil
}

func createTestUser(t *testing.T, userRepo *repository.UserRepository, email, password string, role models.Role) *models.User {
	hashed, err := HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Name:     "Maria Souza",
		Email:    email,
		CPF:      "52998224725",
		Password: hashed,
		Role:     role,
	}
	require.NoError(t, userRepo.Create(context.Background(), user))
	return user
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	service, userRepo, jwtUtil := setupAuthService(t)
	user := createTestUser(t, userRepo, "maria@email.com", "123456", models.RoleEmployee)

	token, err := service.Authenticate(context.Background(), "maria@email.com", "123456")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtUtil.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, models.RoleEmployee, claims.Role)
	assert.Equal(t, "maria@email.com", claims.Email)
	assert.Equal(t, "Maria Souza", claims.Name)
}

func TestAuthService_Authenticate_RecordsSignIn(t *testing.T) {
	service, userRepo, _ := setupAuthService(t)
	user := createTestUser(t, userRepo, "maria@email.com", "123456", models.RoleEmployee)

	_, err := service.Authenticate(context.Background(), "maria@email.com", "123456")
	require.NoError(t, err)
	_, err = service.Authenticate(context.Background(), "maria@email.com", "123456")
	require.NoError(t, err)

	reloaded, err := userRepo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.SignInCount)
	assert.NotNil(t, reloaded.LastLoginAt)
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	service, userRepo, _ := setupAuthService(t)
	createTestUser(t, userRepo, "maria@email.com", "123456", models.RoleEmployee)

	_, err := service.Authenticate(context.Background(), "maria@email.com", "wrong")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, "User credentials do not match", err.Error())
}

func TestAuthService_Authenticate_UnknownEmail(t *testing.T) {
	service, _, _ := setupAuthService(t)

	_, err := service.Authenticate(context.Background(), "nobody@email.com", "123456")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))

	// Same message as a wrong password, so the response never reveals
	// whether the account exists.
	assert.Equal(t, "User credentials do not match", err.Error())
}

func TestAuthService_Authenticate_NoSignInOnFailure(t *testing.T) {
	service, userRepo, _ := setupAuthService(t)
	user := createTestUser(t, userRepo, "maria@email.com", "123456", models.RoleEmployee)

	_, err := service.Authenticate(context.Background(), "maria@email.com", "wrong")
	require.Error(t, err)

	reloaded, err := userRepo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.SignInCount)
	assert.Nil(t, reloaded.LastLoginAt)
}
