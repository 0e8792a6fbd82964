package rmiddleware

import (
	"net/http"
	"strings"

	"github.com/RohanMehta-11/festly/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RoleMiddleware lets the request through only when the authenticated user
// holds at least one of the required roles.
func RoleMiddleware(db *gorm.DB, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := middleware.GetUserIDFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		var userRoles []string
		err = db.Table("roles").
			Joins("JOIN user_roles ON user_roles.role_id = roles.id").
			Where("user_roles.user_id = ?", userID).
			Pluck("roles.name", &userRoles).Error
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user roles"})
			return
		}

		hasRequiredRole := false
		for _, userRole := range userRoles {
			for _, requiredRole := range requiredRoles {
				if strings.EqualFold(userRole, requiredRole) {
					hasRequiredRole = true
					break
				}
			}
			if hasRequiredRole {
				break
			}
		}

		if !hasRequiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Forbidden",
				"message":  "You don't have permission to access this resource",
				"required": requiredRoles,
			})
			return
		}

		c.Set("user_roles", userRoles)
		c.Next()
	}
}

// PermissionMiddleware gates an action behind an explicitly granted
// capability, e.g. the registration bulk-import permission. It is distinct
// from roles: a permission is granted per user.
func PermissionMiddleware(db *gorm.DB, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := middleware.GetUserIDFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		var count int64
		err = db.Table("permissions").
			Joins("JOIN user_permissions ON user_permissions.permission_id = permissions.id").
			Where("user_permissions.user_id = ? AND permissions.code = ?", userID, permission).
			Count(&count).Error
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check permissions"})
			return
		}

		if count == 0 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Forbidden",
				"message":  "This action requires an explicitly granted permission",
				"required": permission,
			})
			return
		}

		c.Next()
	}
}

// AdminMiddleware is a convenience middleware for admin-only access.
func AdminMiddleware(db *gorm.DB) gin.HandlerFunc {
	return RoleMiddleware(db, "admin")
}
