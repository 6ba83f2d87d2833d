// auth.go - Optional bearer token enforcement for mutating endpoints
//
// Authentication Flow:
// 1. Extract the token from the Authorization header
// 2. Validate signature, issuer and expiry
// 3. Store the account id and role in the context
//
// Authorization Flow (Admin):
// 1. Run RequireAuth first
// 2. Compare the role claim with the required role

package middleware

import (
	"net/http"
	"strings"

	"go-shop-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	accountIDKey = "account_id"
	roleKey      = "role"
)

// TokenValidator is implemented by utils.TokenIssuer
type TokenValidator interface {
	ValidateToken(token string) (*utils.Claims, error)
}

// RequireAuth rejects requests without a valid bearer token. When enabled is
// false it lets every request through untouched.
func RequireAuth(tokens TokenValidator, enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(accountIDKey, claims.Subject) // read back with AccountID
		c.Set(roleKey, claims.Role)
		c.Next()
	}
}

// RequireRole allows only tokens carrying role. It must run after
// RequireAuth and is a no-op when enforcement is disabled.
func RequireRole(role string, enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}
		if c.GetString(roleKey) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": role + " access required"})
			return
		}
		c.Next()
	}
}

// AccountID returns the token subject stored by RequireAuth
func AccountID(c *gin.Context) string {
	return c.GetString(accountIDKey)
}
