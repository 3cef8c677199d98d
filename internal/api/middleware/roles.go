package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frota-backend/internal/models"
)

// PermissionTable maps "METHOD /route/path" (gin's FullPath form) to the
// roles allowed on it. Routes absent from the table are open to any
// authenticated caller. The hierarchy is flat: a role is allowed only when
// listed.
type PermissionTable map[string][]models.Role

// Authorize is the single authorization check. It runs after AuthMiddleware
// and consults the table with the matched route.
func Authorize(table PermissionTable) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, declared := table[c.Request.Method+" "+c.FullPath()]
		if !declared || len(allowed) == 0 {
			c.Next()
			return
		}

		claims, ok := CurrentClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization required"})
			c.Abort()
			return
		}

		for _, role := range allowed {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Acesso negado"})
		c.Abort()
	}
}
