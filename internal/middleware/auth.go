package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nedhal-be/config"
	"nedhal-be/internal/models"
	"nedhal-be/internal/utils"
)

// AuthMiddleware guards admin routes with a Bearer access token.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "missing_token",
				Message: "Authorization header with Bearer token required",
			})
			return
		}

		claims, err := utils.ValidateToken(strings.TrimPrefix(header, "Bearer "), cfg.JWTSecret)
		if err != nil || claims.TokenType != "access" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "invalid_token",
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Next()
	}
}
