package rmiddleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wbzhu/matchledger/internal/middleware"
)

// RoleMiddleware allows the request through when the caller's JWT role
// matches one of the required roles. AuthMiddleware must run first.
func RoleMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := middleware.GetRoleFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		hasRequiredRole := false
		for _, requiredRole := range requiredRoles {
			if strings.EqualFold(role, requiredRole) {
				hasRequiredRole = true
				break
			}
		}

		if !hasRequiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "Forbidden",
				"message":   "You don't have permission to access this resource",
				"required":  requiredRoles,
				"user_role": role,
			})
			return
		}

		c.Next()
	}
}

// AdminMiddleware is a convenience middleware for admin-only access
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware("admin")
}

// TreasurerOrAdminMiddleware guards fee-mutating routes.
func TreasurerOrAdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware("treasurer", "admin")
}
