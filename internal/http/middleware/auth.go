package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobsapi/internal/auth"
	"jobsapi/internal/domain"
)

// Authenticate requires "Authorization: Bearer <token>" and puts the resolved
// principal on the request context.
func Authenticate(v *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			AbortWithError(c, http.StatusUnauthorized, CodeUnauthenticated, "Missing Auth header", nil)
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) < 2 || parts[0] != "Bearer" || parts[1] == "" {
			AbortWithError(c, http.StatusUnauthorized, CodeUnauthenticated, "Invalid Auth header format", nil)
			return
		}

		principal, err := v.Verify(parts[1])
		if err != nil {
			AbortWithError(c, http.StatusUnauthorized, CodeUnauthenticated, "Invalid token", nil)
			return
		}

		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}

// RequireRoles only lets through principals holding one of allowedRoles.
// It must run after Authenticate.
func RequireRoles(allowedRoles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		principal, ok := auth.PrincipalFrom(c.Request.Context())
		if !ok {
			AbortWithError(c, http.StatusUnauthorized, CodeUnauthenticated, "Unauthorised", nil)
			return
		}

		if _, ok := allowed[principal.Role]; !ok {
			AbortWithError(c, http.StatusForbidden, CodeForbidden, "Not allowed", nil)
			return
		}

		c.Next()
	}
}
