package middleware

import (
	"errors"
	"net/http"

	"greenvilla/services/session"
	"greenvilla/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by SessionAuthMiddleware.
const (
	EmailKey  = "email"
	ClaimsKey = "sessionClaims"
)

// SessionAuthMiddleware rejects requests without a valid, unrevoked
// session cookie and stores the session identity in the context.
func SessionAuthMiddleware(issuer *session.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := RequestLogger(c)

		token, err := c.Cookie(session.CookieName)
		if err != nil {
			token = ""
		}

		claims, err := issuer.Verify(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, session.ErrMissingToken) {
				logger.Info("session rejected", zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "access denied"})
			return
		}

		c.Set(EmailKey, claims.Email)
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// SessionEmail returns the email stored by SessionAuthMiddleware.
func SessionEmail(c *gin.Context) (string, bool) {
	email := c.GetString(EmailKey)
	return email, email != ""
}
