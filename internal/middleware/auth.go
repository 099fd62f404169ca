package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"hospital-queue-server/internal/config"
	"hospital-queue-server/internal/utils"
)

// DoctorAuthMiddleware creates a middleware for doctor session authentication.
func DoctorAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		tokenString := parts[1]
		claims, err := utils.ValidateToken(tokenString, cfg.JWTSecret)
		if err != nil {
			utils.Unauthorized(c, "Invalid token: "+err.Error())
			c.Abort()
			return
		}

		// Set doctor identity in context for downstream handlers
		c.Set("doctorID", claims.DoctorID)
		c.Set("departmentID", claims.DepartmentID)

		c.Next()
	}
}

// GetDoctorIDFromContext returns the authenticated doctor's ID.
func GetDoctorIDFromContext(c *gin.Context) (string, bool) {
	doctorID, exists := c.Get("doctorID")
	if !exists {
		return "", false
	}
	idStr, ok := doctorID.(string)
	return idStr, ok
}

// GetDepartmentIDFromContext returns the authenticated doctor's department.
func GetDepartmentIDFromContext(c *gin.Context) (string, bool) {
	departmentID, exists := c.Get("departmentID")
	if !exists {
		return "", false
	}
	idStr, ok := departmentID.(string)
	return idStr, ok
}
