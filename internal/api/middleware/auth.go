package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vansh1703/cars/internal/auth"
)

const sessionClaimsKey = "sessionClaims"

// RequireAdmin rejects requests without a valid admin session cookie.
func RequireAdmin(sessions *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessions.CookieName())
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := sessions.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(sessionClaimsKey, claims)
		c.Next()
	}
}

// SessionClaims returns the verified claims set by RequireAdmin, if any.
func SessionClaims(c *gin.Context) (*auth.SessionClaims, bool) {
	value, ok := c.Get(sessionClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*auth.SessionClaims)
	return claims, ok
}
