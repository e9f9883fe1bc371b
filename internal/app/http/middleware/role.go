package middleware

import (
	"net/http"

	"gallery-app/internal/domain/access"

	"github.com/gin-gonic/gin"
)

// RoleHeader carries the caller-asserted role. It is trusted as-is; an
// authentication layer in front of this service would be responsible for
// verifying it.
const RoleHeader = "x-role"

func RequireRole(op access.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := access.Role(c.GetHeader(RoleHeader))

		if !access.Allowed(role, op) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		c.Next()
	}
}
