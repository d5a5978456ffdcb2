package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitPerIP(1, 1, 100, time.Hour))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	req := func(addr string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		rq := httptest.NewRequest(http.MethodGet, "/", nil)
		rq.RemoteAddr = addr
		r.ServeHTTP(w, rq)
		return w
	}

	if w := req("1.2.3.4:12345"); w.Code != http.StatusOK {
		t.Fatalf("first request: want 200, got %d", w.Code)
	}
	if w := req("1.2.3.4:12345"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("burst exhausted: want 429, got %d", w.Code)
	}

	// a different client has its own bucket
	if w := req("5.6.7.8:54321"); w.Code != http.StatusOK {
		t.Fatalf("other ip: want 200, got %d", w.Code)
	}
}
