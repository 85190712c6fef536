// Package middleware contains any custom middleware used in the app
package middleware

import (
	"net/http"

	"github.com/Tanz2024/Portfolio/auth"
	"github.com/gin-gonic/gin"
)

// ClaimsKey is where the verified token claims land in the request context.
const ClaimsKey = "claims"

// RequireAdmin verifies the token cookie, stashes its claims and rejects
// every role but administrator. A missing cookie and a bad token are
// distinct failures: the caller either never authenticated, or presented
// something no longer trusted.
func RequireAdmin(m *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, status, errMsg := verify(m, c)
		if claims == nil {
			c.AbortWithStatusJSON(status, gin.H{
				"error":     errMsg,
				"requestID": c.GetString("requestID"),
			})
			return
		}

		switch claims.Role {
		case auth.RoleAdmin:
		case auth.RoleViewer, auth.RoleGuest:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "Admins only",
				"requestID": c.GetString("requestID"),
			})
			return
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "Admins only",
				"requestID": c.GetString("requestID"),
			})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// Claims returns the verified claims set by RequireAdmin.
func Claims(c *gin.Context) *auth.Claims {
	return c.MustGet(ClaimsKey).(*auth.Claims)
}

func verify(m *auth.Manager, c *gin.Context) (*auth.Claims, int, string) {
	tokenStr, err := c.Cookie(auth.CookieName)
	if err != nil {
		return nil, http.StatusUnauthorized, "Not authenticated"
	}

	claims, err := m.Parse(tokenStr)
	if err != nil {
		return nil, http.StatusForbidden, "Forbidden"
	}
	return claims, 0, ""
}
