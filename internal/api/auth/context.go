package auth

import "github.com/gin-gonic/gin"

// claimsContextKey is where RequireAuth stores verified claims in the gin context
const claimsContextKey = "auth_claims"

// SetClaims attaches verified claims to the request context
func SetClaims(c *gin.Context, claims *Claims) {
	c.Set(claimsContextKey, claims)
}

// ClaimsFromContext returns the claims attached by the auth middleware
func ClaimsFromContext(c *gin.Context) (*Claims, bool) {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return nil, false
	}

	claims, ok := value.(*Claims)
	return claims, ok
}
