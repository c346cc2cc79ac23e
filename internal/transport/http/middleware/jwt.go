package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"encheres-api/internal/pkg/jwtutil"
	"encheres-api/internal/transport/http/response"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
	ContextEmailKey    = "email"
)

// AuthJWT extracts and verifies a `Bearer <token>` header. A missing or
// ill-formed header is 401; a token that fails verification is 403. On
// success the verified identity is set on the context and trusted for
// the rest of the request without a store round-trip.
func AuthJWT(issuer *jwtutil.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		// A non-Bearer scheme counts as "no token presented" (401), not as
		// a bad token (403): only Bearer credentials are accepted here.
		const prefix = "Bearer "
		if !strings.HasPrefix(authHeader, prefix) {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid authorization scheme")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
		if token == "" {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		claims, err := issuer.Verify(token)
		if err != nil {
			response.Error(c, http.StatusForbidden, response.CodeInvalidToken, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

// CurrentUserID returns the verified user id set by AuthJWT.
func CurrentUserID(c *gin.Context) (uint, bool) {
	idAny, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := idAny.(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}
