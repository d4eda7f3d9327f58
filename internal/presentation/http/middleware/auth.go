package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nilkanthplet/BP-1.0/internal/presentation/http/dto/response"
	"github.com/nilkanthplet/BP-1.0/pkg/utils"
)

// Operator permissions
const (
	PermissionManageUsers     = "manage-users"
	PermissionManageReceipts  = "manage-receipts"
	PermissionManageInventory = "manage-inventory"
	PermissionManageBills     = "manage-bills"
	PermissionPrint           = "print"
)

// AllPermissions is granted to tokens minted without an explicit list
var AllPermissions = []string{
	PermissionManageUsers,
	PermissionManageReceipts,
	PermissionManageInventory,
	PermissionManageBills,
	PermissionPrint,
}

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("operator_id", claims.OperatorID)
		c.Set("operator_name", claims.Name)
		c.Set("operator_permissions", claims.Permissions)

		c.Next()
	}
}

// RequirePermission creates a middleware that requires a specific permission
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		permissions, exists := c.Get("operator_permissions")
		if !exists {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		granted, ok := permissions.([]string)
		if !ok {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		for _, p := range granted {
			if p == permission {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "You do not have permission to perform this action")
		c.Abort()
	}
}
