package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/limited", rl.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	r := newLimitedRouter(NewRateLimiter(5, 2))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/limited", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiterRejectsBeyondBurst(t *testing.T) {
	r := newLimitedRouter(NewRateLimiter(5, 2))

	var lastCode int
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/limited", nil)
		r.ServeHTTP(w, req)
		lastCode = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}

func TestRateLimiterTracksClientsSeparately(t *testing.T) {
	r := newLimitedRouter(NewRateLimiter(5, 1))

	first := httptest.NewRequest("GET", "/limited", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, first)
	assert.Equal(t, http.StatusOK, w.Code)

	second := httptest.NewRequest("GET", "/limited", nil)
	second.RemoteAddr = "10.0.0.2:1234"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, second)
	assert.Equal(t, http.StatusOK, w.Code)
}
