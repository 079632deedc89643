package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reseldor/content-api/internal/domain"
	"github.com/reseldor/content-api/internal/service"
	"github.com/reseldor/content-api/pkg/response"
)

// Context keys set by Auth for downstream handlers
const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
	ContextUserRole  = "user_role"
)

// Auth verifies the Bearer access token and puts the caller's identity
// on the request context
func Auth(tokens service.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}
		token := authHeader[len(bearerPrefix):]

		claims, err := tokens.VerifyAccess(token)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserRole, string(claims.Role))

		c.Next()
	}
}

// AdminOnly rejects callers whose token does not carry the ADMIN role.
// Must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		if role == "" {
			response.Unauthorized(c, "User role not found in context")
			c.Abort()
			return
		}
		if domain.Role(role) != domain.RoleAdmin {
			response.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
