package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"greenvilla/database/repository"
	"greenvilla/services/booking"
	"greenvilla/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid id", err: fmt.Errorf("%w: %q", repository.ErrInvalidID, "x"), want: http.StatusBadRequest},
		{name: "forbidden", err: booking.ErrForbidden, want: http.StatusForbidden},
		{name: "store failure", err: errors.New("connection reset"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, "test", tt.err)
			assert.Equal(t, tt.want, w.Code)
			assert.True(t, c.IsAborted())
		})
	}
}

func TestRespondError_HidesStoreErrorText(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/rooms", nil)
	c.Set("logger", zap.New(core))

	storeErr := errors.New("server selection error: cluster0.yshawkz.mongodb.net:27017 unreachable")
	respondError(c, "list rooms", storeErr)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body.Message)
	assert.Equal(t, utils.InternalErrorDetails, body.Details)
	assert.NotContains(t, w.Body.String(), "mongodb.net")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "list rooms", entries[0].ContextMap()["action"])
	assert.Contains(t, entries[0].ContextMap()["error"], "mongodb.net")
}

func TestBookingHandlerWithoutSessionMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/bookings", NewBookingHandler(nil).GetBookingsHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
