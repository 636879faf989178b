package handlers

import (
	"net/http"

	"greenvilla/utils"

	"github.com/gin-gonic/gin"
)

// LivenessMessage is the plain-text body of GET /.
const LivenessMessage = "Green Villa server is running"

// HealthHandler serves liveness and dependency health.
type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(monitor *utils.HealthMonitor) *HealthHandler {
	return &HealthHandler{Monitor: monitor}
}

// RootHandler handles GET /.
func (h *HealthHandler) RootHandler(c *gin.Context) {
	c.String(http.StatusOK, LivenessMessage)
}

// HealthCheckHandler handles GET /health with the latest monitor snapshot.
func (h *HealthHandler) HealthCheckHandler(c *gin.Context) {
	status := h.Monitor.Status()
	code := http.StatusOK
	if status.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
