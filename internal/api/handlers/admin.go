package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frota-backend/pkg/utils"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// Resource is a probe endpoint restricted to MANAGER and ADMIN profiles.
func (h *AdminHandler) Resource(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Acesso liberado para perfis MANAGER e ADMIN", nil)
}
