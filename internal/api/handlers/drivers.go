package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"frota-backend/internal/api/middleware"
	"frota-backend/internal/services"
	"frota-backend/pkg/utils"
)

type DriversHandler struct {
	driversService *services.DriversService
	validator      *validator.Validate
}

func NewDriversHandler(driversService *services.DriversService) *DriversHandler {
	return &DriversHandler{
		driversService: driversService,
		validator:      validator.New(),
	}
}

func (h *DriversHandler) Create(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	var req services.CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	driver, err := h.driversService.Create(c.Request.Context(), &req, actor)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Driver created successfully", gin.H{"driver": driver})
}

func (h *DriversHandler) Get(c *gin.Context) {
	driver, err := h.driversService.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Driver retrieved successfully", gin.H{"driver": driver})
}

func (h *DriversHandler) Update(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	var req services.UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	driver, err := h.driversService.Update(c.Request.Context(), c.Param("id"), &req, actor)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Driver updated successfully", gin.H{"driver": driver})
}

func (h *DriversHandler) Delete(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	if err := h.driversService.Delete(c.Request.Context(), c.Param("id"), actor); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
