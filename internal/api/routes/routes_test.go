package routes

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"frota-backend/internal/config"
	"frota-backend/internal/models"
	"frota-backend/pkg/geocode"
	"frota-backend/pkg/jwt"
)

type testApp struct {
	router  *gin.Engine
	db      *gorm.DB
	jwtUtil *jwt.JWTUtil
}

func setupTestApp(t *testing.T) *testApp {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, models.AutoMigrate(db))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	jwtUtil := jwt.NewFromKeys(key, time.Hour)

	router := gin.New()
	SetupRoutes(router, Dependencies{
		DB:          db,
		RedisClient: redisClient,
		JWTUtil:     jwtUtil,
		Geocoder:    geocode.NewClient(),
		Logger:      zap.NewNop(),
		Config: &config.Config{
			Environment:    "test",
			LoginRateLimit: 100,
		},
	})

	return &testApp{router: router, db: db, jwtUtil: jwtUtil}
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

var testCPFSeq int

func (a *testApp) tokenFor(t *testing.T, role models.Role) string {
	testCPFSeq++
	user := &models.User{
		Name:     "Usuário de Teste",
		Email:    string(role) + "@email.com",
		CPF:      fmt.Sprintf("%011d", testCPFSeq),
		Password: "hash",
		Role:     role,
	}
	require.NoError(t, a.db.Create(user).Error)

	token, err := a.jwtUtil.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func TestSignupAndLoginFlow(t *testing.T) {
	app := setupTestApp(t)

	w := app.do(t, http.MethodPost, "/accounts", gin.H{
		"name":     "Carlos Lima",
		"email":    "carlos@email.com",
		"cpf":      "15350946056",
		"password": "123456",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.do(t, http.MethodPost, "/auth/login", gin.H{
		"email":    "carlos@email.com",
		"password": "123456",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "access_token")

	cookies := w.Result().Cookies()
	var authCookie *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == "auth_token" {
			authCookie = cookie
		}
	}
	require.NotNil(t, authCookie)
	assert.True(t, authCookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, authCookie.SameSite)

	w = app.do(t, http.MethodPost, "/auth/login", gin.H{
		"email":    "carlos@email.com",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "User credentials do not match")
}

func TestProfileOmitsPassword(t *testing.T) {
	app := setupTestApp(t)

	w := app.do(t, http.MethodPost, "/accounts", gin.H{
		"name":     "Carlos Lima",
		"email":    "carlos@email.com",
		"cpf":      "15350946056",
		"password": "123456",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.do(t, http.MethodPost, "/auth/login", gin.H{
		"email":    "carlos@email.com",
		"password": "123456",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var login struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Data.AccessToken)

	w = app.do(t, http.MethodGet, "/me", nil, login.Data.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "carlos@email.com")
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "123456")

	w = app.do(t, http.MethodGet, "/auth/me", nil, login.Data.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := setupTestApp(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/vehicles"},
		{http.MethodPost, "/drivers"},
		{http.MethodGet, "/me"},
		{http.MethodGet, "/auth/me"},
	} {
		w := app.do(t, route.method, route.path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestPublicRoutes(t *testing.T) {
	app := setupTestApp(t)

	w := app.do(t, http.MethodGet, "/departments", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestAdminRouteRoles(t *testing.T) {
	app := setupTestApp(t)

	w := app.do(t, http.MethodGet, "/admin", nil, app.tokenFor(t, models.RoleEmployee))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Acesso negado")

	w = app.do(t, http.MethodGet, "/admin", nil, app.tokenFor(t, models.RoleManager))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Acesso liberado para perfis MANAGER e ADMIN")

	w = app.do(t, http.MethodGet, "/admin", nil, app.tokenFor(t, models.RoleAdmin))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTripValidationRequiresAdminRoute(t *testing.T) {
	app := setupTestApp(t)

	w := app.do(t, http.MethodPatch, "/trip-requests/any-id/validate", gin.H{
		"status":     "APPROVED",
		"approverId": "ignored",
	}, app.tokenFor(t, models.RoleManager))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Acesso negado")
}

func TestVehicleLifecycleOverHTTP(t *testing.T) {
	app := setupTestApp(t)
	token := app.tokenFor(t, models.RoleAdmin)

	w := app.do(t, http.MethodPost, "/vehicles", gin.H{
		"plate":   "ABC1D23",
		"model":   "Onix",
		"year":    2022,
		"color":   "Branco",
		"chassi":  "9BWZZZ377VT004251",
		"renavam": "12345678901",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			Vehicle models.Vehicle `json:"vehicle"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Data.Vehicle.ID.String()

	w = app.do(t, http.MethodGet, "/vehicles/"+id, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodPost, "/vehicles", gin.H{
		"plate":   "ABC1D23",
		"model":   "Gol",
		"year":    2020,
		"color":   "Preto",
		"chassi":  "9BWZZZ377VT004299",
		"renavam": "98765432109",
	}, token)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "A vehicle with this plate already exists.")

	w = app.do(t, http.MethodDelete, "/vehicles/"+id, nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = app.do(t, http.MethodGet, "/vehicles/"+id, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidationErrorsAreFieldLevel(t *testing.T) {
	app := setupTestApp(t)
	token := app.tokenFor(t, models.RoleAdmin)

	w := app.do(t, http.MethodPost, "/drivers", gin.H{
		"name": "João",
		"cpf":  "123",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Validation failed")
	assert.Contains(t, w.Body.String(), "CPF must be exactly 11 characters")
	assert.Contains(t, w.Body.String(), "CNH is required")
}
