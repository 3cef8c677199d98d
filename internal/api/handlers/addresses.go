package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"frota-backend/internal/api/middleware"
	"frota-backend/internal/services"
	"frota-backend/pkg/utils"
)

type AddressesHandler struct {
	addressesService *services.AddressesService
	validator        *validator.Validate
}

func NewAddressesHandler(addressesService *services.AddressesService) *AddressesHandler {
	return &AddressesHandler{
		addressesService: addressesService,
		validator:        validator.New(),
	}
}

func (h *AddressesHandler) Create(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	var req services.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	address, err := h.addressesService.Create(c.Request.Context(), &req, actor)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Address created successfully", gin.H{"address": address})
}

// Search proxies the query to the external geocoding service.
func (h *AddressesHandler) Search(c *gin.Context) {
	results, err := h.addressesService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Address lookup failed", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Addresses retrieved successfully", gin.H{"results": results})
}

func (h *AddressesHandler) Get(c *gin.Context) {
	address, err := h.addressesService.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Address retrieved successfully", gin.H{"address": address})
}
