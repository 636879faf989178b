package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"greenvilla/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheckHandler_StatusCode(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		mongoPing  func(context.Context) error
		redisPing  func(context.Context) error
		wantCode   int
		wantStatus string
	}{
		{name: "healthy", mongoPing: up, redisPing: up, wantCode: http.StatusOK, wantStatus: "ok"},
		{name: "revocation disabled", mongoPing: up, wantCode: http.StatusOK, wantStatus: "ok"},
		{name: "mongo down", mongoPing: down, redisPing: up, wantCode: http.StatusServiceUnavailable, wantStatus: "degraded"},
		{name: "redis down", mongoPing: up, redisPing: down, wantCode: http.StatusServiceUnavailable, wantStatus: "degraded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monitor := utils.NewPingMonitor(tt.mongoPing, tt.redisPing, time.Hour)
			monitor.Check(context.Background())

			r := gin.New()
			r.GET("/health", NewHealthHandler(monitor).HealthCheckHandler)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			var status utils.HealthStatus
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
			assert.Equal(t, tt.wantStatus, status.Status)
		})
	}
}
