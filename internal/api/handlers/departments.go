package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frota-backend/internal/services"
	"frota-backend/pkg/utils"
)

type DepartmentsHandler struct {
	departmentsService *services.DepartmentsService
}

func NewDepartmentsHandler(departmentsService *services.DepartmentsService) *DepartmentsHandler {
	return &DepartmentsHandler{departmentsService: departmentsService}
}

// List returns active departments ordered by priority, highest first.
func (h *DepartmentsHandler) List(c *gin.Context) {
	departments, err := h.departmentsService.FindAllActive(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Departments retrieved successfully", departments)
}
