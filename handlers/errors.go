package handlers

import (
	"errors"
	"net/http"

	"greenvilla/database/repository"
	"greenvilla/middleware"
	"greenvilla/services/booking"
	"greenvilla/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service and repository errors onto status codes.
func respondError(c *gin.Context, action string, err error) {
	logger := getLogger(c)
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		utils.JSONError(c, logger, http.StatusBadRequest, "invalid id", "")
	case errors.Is(err, booking.ErrForbidden):
		utils.JSONError(c, logger, http.StatusForbidden, "forbidden", action)
	default:
		_ = c.Error(err)
		logger.Error("store operation failed", zap.String("action", action), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, utils.ErrorResponse{
			Message: "Internal Server Error",
			Details: utils.InternalErrorDetails,
		})
	}
}

// respondBindError rejects a request body that failed to decode or validate.
func respondBindError(c *gin.Context, err error) {
	utils.JSONError(c, getLogger(c), http.StatusBadRequest, "invalid request", utils.BindingDetails(err))
}

// sessionEmail returns the caller's email, or aborts when the route is
// missing the session middleware.
func sessionEmail(c *gin.Context) (string, bool) {
	email, ok := middleware.SessionEmail(c)
	if !ok {
		utils.JSONError(c, getLogger(c), http.StatusUnauthorized, "access denied", "no session in context")
	}
	return email, ok
}
