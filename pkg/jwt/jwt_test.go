package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frota-backend/internal/models"
)

func testUser() *models.User {
	departmentID := uuid.New()
	return &models.User{
		ID:           uuid.New(),
		Name:         "Maria Souza",
		Email:        "maria@email.com",
		Role:         models.RoleCoordinator,
		DepartmentID: &departmentID,
		Department: &models.Department{
			ID:   departmentID,
			Name: "Gabinete",
			Code: "GAB",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	util := NewFromKeys(key, time.Hour)

	user := testUser()
	token, err := util.GenerateToken(user)
	require.NoError(t, err)

	claims, err := util.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, models.RoleCoordinator, claims.Role)
	assert.Equal(t, "maria@email.com", claims.Email)
	assert.Equal(t, "Maria Souza", claims.Name)
	require.NotNil(t, claims.DepartmentID)
	assert.Equal(t, user.DepartmentID.String(), *claims.DepartmentID)
	require.NotNil(t, claims.DepartmentName)
	assert.Equal(t, "Gabinete", *claims.DepartmentName)
	require.NotNil(t, claims.DepartmentCode)
	assert.Equal(t, "GAB", *claims.DepartmentCode)
}

func TestValidateToken_Expired(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	util := NewFromKeys(key, -time.Minute)

	token, err := util.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = util.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_WrongKey(t *testing.T) {
	signingKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	token, err := NewFromKeys(signingKey, time.Hour).GenerateToken(testUser())
	require.NoError(t, err)

	_, err = NewFromKeys(otherKey, time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	_, err = NewFromKeys(key, time.Hour).ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestGenerateToken_NoPrivateKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	util := &JWTUtil{publicKey: &key.PublicKey, expiry: time.Hour}

	_, err = util.GenerateToken(testUser())
	assert.Error(t, err)
}

func TestNew_MissingPublicKey(t *testing.T) {
	_, err := New("", "", time.Hour)
	assert.Error(t, err)
}
