package router

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aayushkhanal47/jobboard-be/internal/api/auth"
)

const bearerPrefix = "Bearer "

// tokenCookieName is the fallback credential location for browser clients
const tokenCookieName = "token"

// extractToken pulls the bearer token from the Authorization header, falling
// back to the token cookie
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimPrefix(header, bearerPrefix)
	}

	if cookie, err := c.Cookie(tokenCookieName); err == nil {
		return cookie
	}

	return ""
}

// RequireAuth verifies the request's bearer token and attaches its claims to
// the context. Must run before any role check.
func RequireAuth(logger *slog.Logger, tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization token missing",
			})
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			logger.Debug("Token verification failed",
				slog.String("path", c.Request.URL.Path),
				slog.String("error", err.Error()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}

		auth.SetClaims(c, claims)
		c.Next()
	}
}

// RequireRole rejects callers whose role is not in the allowed set. A route
// with no RequireRole middleware has no role restriction.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := auth.ClaimsFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "No user info found",
			})
			return
		}

		for _, role := range roles {
			if string(claims.Role) == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	}
}
