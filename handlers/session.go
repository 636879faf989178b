package handlers

import (
	"net/http"

	"greenvilla/models"
	"greenvilla/services/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler issues and clears the session cookie.
type SessionHandler struct {
	Issuer *session.Issuer
	Cookie session.CookiePolicy
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(issuer *session.Issuer, cookie session.CookiePolicy) *SessionHandler {
	return &SessionHandler{Issuer: issuer, Cookie: cookie}
}

func (h *SessionHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(h.Cookie.SameSite)
	c.SetCookie(session.CookieName, value, maxAge, "/", "", h.Cookie.Secure, true)
}

// IssueSessionHandler handles POST /jwt.
func (h *SessionHandler) IssueSessionHandler(c *gin.Context) {
	logger := getLogger(c)

	var identity models.SessionIdentity
	if err := c.ShouldBindJSON(&identity); err != nil {
		respondBindError(c, err)
		return
	}

	token, _, err := h.Issuer.Issue(identity)
	if err != nil {
		respondError(c, "issue session", err)
		return
	}

	h.setCookie(c, token, int(h.Issuer.TTL().Seconds()))
	logger.Info("session issued", zap.String("email", identity.Email))
	c.JSON(http.StatusOK, gin.H{"auth": true})
}

// ClearSessionHandler handles POST /logout. The cookie is always cleared;
// a still-valid token is also revoked so replayed copies are refused.
func (h *SessionHandler) ClearSessionHandler(c *gin.Context) {
	logger := getLogger(c)

	if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
		claims, err := h.Issuer.Verify(c.Request.Context(), token)
		if err == nil {
			if err := h.Issuer.Revoke(c.Request.Context(), claims); err != nil {
				logger.Error("session revocation failed", zap.String("email", claims.Email), zap.Error(err))
			} else {
				logger.Info("session revoked", zap.String("email", claims.Email))
			}
		}
	}

	h.setCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"clear": true})
}
