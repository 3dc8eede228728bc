package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"booklend-backend/internal/identity"
	"booklend-backend/internal/shared/response"
)

const principalEmailKey = "principalEmail"

// RequireAuthenticated extracts the bearer token, verifies it and attaches
// the principal email to the request context. It is always the first gate
// in a chain; on any failure the request stops with 401 before handler
// logic runs.
func RequireAuthenticated(verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		principal, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(principalEmailKey, principal.Email)
		c.Next()
	}
}

// PrincipalEmail returns the verified email set by RequireAuthenticated,
// or "" when the request is unauthenticated.
func PrincipalEmail(c *gin.Context) string {
	return c.GetString(principalEmailKey)
}
