package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"frota-backend/internal/services"
	"frota-backend/pkg/utils"
)

type AccountsHandler struct {
	accountsService *services.AccountsService
	validator       *validator.Validate
}

func NewAccountsHandler(accountsService *services.AccountsService) *AccountsHandler {
	return &AccountsHandler{
		accountsService: accountsService,
		validator:       validator.New(),
	}
}

// Create is the public sign-up endpoint.
func (h *AccountsHandler) Create(c *gin.Context) {
	var req services.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	if err := h.accountsService.Create(c.Request.Context(), &req); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Account created successfully", nil)
}
