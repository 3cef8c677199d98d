package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"frota-backend/internal/models"
	"frota-backend/internal/repository"
	"frota-backend/pkg/apperrors"
)

func TestAccountsService_Create(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	service := NewAccountsService(userRepo)

	err := service.Create(context.Background(), &CreateAccountRequest{
		Name:     "Carlos Lima",
		Email:    "carlos@email.com",
		CPF:      "52998224725",
		Password: "123456",
	})
	require.NoError(t, err)

	user, err := userRepo.FindByEmail(context.Background(), "carlos@email.com")
	require.NoError(t, err)
	assert.Equal(t, "Carlos Lima", user.Name)
	assert.Equal(t, models.RoleEmployee, user.Role)
	assert.Nil(t, user.DepartmentID)

	// Stored as a hash, never the plaintext.
	assert.NotEqual(t, "123456", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("123456")))
}

func TestAccountsService_Create_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	service := NewAccountsService(userRepo)

	require.NoError(t, service.Create(context.Background(), &CreateAccountRequest{
		Name:     "Carlos Lima",
		Email:    "carlos@email.com",
		CPF:      "52998224725",
		Password: "123456",
	}))

	err := service.Create(context.Background(), &CreateAccountRequest{
		Name:     "Outro Carlos",
		Email:    "carlos@email.com",
		CPF:      "15350946056",
		Password: "654321",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, "User with the same e-mail already exists", err.Error())
}

func TestAccountsService_Create_DuplicateCPF(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	service := NewAccountsService(userRepo)

	require.NoError(t, service.Create(context.Background(), &CreateAccountRequest{
		Name:     "Carlos Lima",
		Email:    "carlos@email.com",
		CPF:      "52998224725",
		Password: "123456",
	}))

	// The CPF is only guarded by the unique index; the store error still
	// comes back as a Conflict.
	err := service.Create(context.Background(), &CreateAccountRequest{
		Name:     "Outro Carlos",
		Email:    "outro@email.com",
		CPF:      "52998224725",
		Password: "654321",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestAccountsService_Create_WithDepartment(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	service := NewAccountsService(userRepo)

	department := &models.Department{Name: "Gabinete", Code: "GAB", IsActive: true}
	require.NoError(t, db.Create(department).Error)

	departmentID := department.ID.String()
	err := service.Create(context.Background(), &CreateAccountRequest{
		Name:         "Carlos Lima",
		Email:        "carlos@email.com",
		CPF:          "52998224725",
		Password:     "123456",
		DepartmentID: &departmentID,
	})
	require.NoError(t, err)

	user, err := userRepo.FindByEmail(context.Background(), "carlos@email.com")
	require.NoError(t, err)
	require.NotNil(t, user.DepartmentID)
	assert.Equal(t, department.ID, *user.DepartmentID)
	require.NotNil(t, user.Department)
	assert.Equal(t, "Gabinete", user.Department.Name)
}
