package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"booklend-backend/internal/shared/response"
)

// RoleResolver looks up a principal's stored role. An absent user must be
// reported as an error, not defaulted: gates reject on anything but an
// exact role match.
type RoleResolver interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// RequireRole rejects with 403 unless the principal's resolved role equals
// the required role exactly. There is no role hierarchy: an admin is not
// implicitly a librarian.
func RequireRole(resolver RoleResolver, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := PrincipalEmail(c)
		if email == "" {
			response.Forbidden(c)
			c.Abort()
			return
		}

		resolved, err := resolver.RoleByEmail(c.Request.Context(), email)
		if err != nil || resolved != role {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSelf rejects with 403 when the caller-supplied email (query
// parameter, falling back to a path parameter of the same name) does not
// equal the authenticated principal's email.
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimed := c.Query(param)
		if claimed == "" {
			claimed = c.Param(param)
		}
		if claimed == "" || claimed != PrincipalEmail(c) {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
