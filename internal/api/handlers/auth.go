package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"frota-backend/internal/api/middleware"
	"frota-backend/internal/services"
	"frota-backend/pkg/utils"
)

type AuthHandler struct {
	authService   *services.AuthService
	validator     *validator.Validate
	secureCookies bool
}

func NewAuthHandler(authService *services.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		validator:     validator.New(),
		secureCookies: secureCookies,
	}
}

// Login authenticates the user, returns the access token and mirrors it
// into an httpOnly cookie for browser clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	token, err := h.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("auth_token", token, 0, "/", "", h.secureCookies, true)

	utils.SuccessResponse(c, http.StatusCreated, "Login successful", gin.H{
		"access_token": token,
	})
}

// Logout clears the authentication cookies.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", "", -1, "/", "", h.secureCookies, true)
	c.SetCookie("refreshToken", "", -1, "/", "", h.secureCookies, true)

	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// Me returns the verified token payload of the caller.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Authenticated user", gin.H{
		"id":             claims.Subject,
		"role":           claims.Role,
		"email":          claims.Email,
		"name":           claims.Name,
		"departmentId":   claims.DepartmentID,
		"departmentName": claims.DepartmentName,
		"departmentCode": claims.DepartmentCode,
	})
}
