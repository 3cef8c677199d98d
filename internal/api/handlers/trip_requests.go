package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"frota-backend/internal/api/middleware"
	"frota-backend/internal/services"
	"frota-backend/pkg/utils"
)

type TripRequestsHandler struct {
	tripRequestsService *services.TripRequestsService
	validator           *validator.Validate
}

func NewTripRequestsHandler(tripRequestsService *services.TripRequestsService) *TripRequestsHandler {
	return &TripRequestsHandler{
		tripRequestsService: tripRequestsService,
		validator:           validator.New(),
	}
}

func (h *TripRequestsHandler) Create(c *gin.Context) {
	var req services.CreateTripRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	trip, err := h.tripRequestsService.Create(c.Request.Context(), &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Trip request created successfully", gin.H{"tripRequest": trip})
}

func (h *TripRequestsHandler) Get(c *gin.Context) {
	trip, err := h.tripRequestsService.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Trip request retrieved successfully", gin.H{"tripRequest": trip})
}

// Validate approves or rejects a pending trip request.
func (h *TripRequestsHandler) Validate(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	var req services.ValidateTripRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	trip, err := h.tripRequestsService.Validate(c.Request.Context(), c.Param("id"), &req, actor)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Trip request validated successfully", gin.H{"tripRequest": trip})
}
