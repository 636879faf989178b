package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func hit(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = ip + ":1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_PerIP(t *testing.T) {
	r := gin.New()
	r.Use(NewRateLimiter(3).Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.2"), "other clients keep their own budget")
}

func TestRateLimiter_Disabled(t *testing.T) {
	r := gin.New()
	r.Use(NewRateLimiter(0).Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 50; i++ {
		assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1"))
	}
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	l := NewRateLimiter(10)
	start := time.Now()

	l.getLimiter("10.0.0.1", start)
	l.getLimiter("10.0.0.2", start.Add(idleLimiterTTL))
	l.getLimiter("10.0.0.2", start.Add(2*idleLimiterTTL+time.Minute))

	assert.NotContains(t, l.visitors, "10.0.0.1")
	assert.Contains(t, l.visitors, "10.0.0.2")
}
