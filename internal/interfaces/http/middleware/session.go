// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oncloth/storefront/internal/pkg/auth"
	"github.com/sirupsen/logrus"
)

const (
	SessionIDKey    = "session_id"
	CartCountHeader = "X-Cart-Count"
)

// Session resolves the guest session from header, falling back to an
// Authorization bearer token. A missing or invalid token starts a new
// session whose token is returned in the same header.
func Session(manager *auth.SessionManager, header string, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(header)
		if token == "" {
			token = auth.ExtractTokenFromHeader(c.GetHeader("Authorization"))
		}

		if token != "" {
			claims, err := manager.Validate(token)
			if err == nil {
				c.Set(SessionIDKey, claims.SessionID)
				c.Next()
				return
			}
			log.WithError(err).Debug("Replacing invalid session token")
		}

		sessionID, newToken, err := manager.NewSession()
		if err != nil {
			log.WithError(err).Error("Failed to issue session token")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to start session",
			})
			c.Abort()
			return
		}

		c.Set(SessionIDKey, sessionID)
		c.Header(header, newToken)
		c.Next()
	}
}

// GetSessionIDFromContext extracts the session ID from gin context
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get(SessionIDKey)
	if !exists {
		return "", false
	}
	id, ok := sessionID.(string)
	return id, ok
}
