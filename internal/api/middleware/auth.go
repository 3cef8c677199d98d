package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"frota-backend/internal/services"
	"frota-backend/pkg/jwt"
)

const claimsContextKey = "auth_claims"

// AuthMiddleware verifies the bearer token (or the auth_token cookie the
// login endpoint mirrors it into) and stores the claims on the request
// context.
func AuthMiddleware(jwtUtil *jwt.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization required"})
			c.Abort()
			return
		}

		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

// CurrentClaims returns the verified token claims set by AuthMiddleware.
func CurrentClaims(c *gin.Context) (*jwt.Claims, bool) {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*jwt.Claims)
	return claims, ok
}

// CurrentActor converts the claims into the actor mutations are attributed
// to.
func CurrentActor(c *gin.Context) (services.Actor, bool) {
	claims, ok := CurrentClaims(c)
	if !ok {
		return services.Actor{}, false
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return services.Actor{}, false
	}

	actor := services.Actor{
		ID:   userID,
		Role: claims.Role,
	}
	if claims.DepartmentID != nil {
		if departmentID, err := uuid.Parse(*claims.DepartmentID); err == nil {
			actor.DepartmentID = &departmentID
		}
	}
	return actor, true
}
