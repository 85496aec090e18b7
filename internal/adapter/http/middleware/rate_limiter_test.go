package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"

	"checklistapp/internal/adapter/http/middleware"
	"checklistapp/pkg/config"
)

func setupLimitedRouter(requests int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	limiter := middleware.NewRateLimiter(map[string]config.RateLimitConfig{
		"/ping": {Requests: requests, Window: time.Minute},
	}, nil)

	router := gin.New()
	router.Use(limiter.Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	RegisterTestingT(t)

	router := setupLimitedRouter(3)

	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		router.ServeHTTP(rr, req)

		Expect(rr.Code).To(Equal(http.StatusOK))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	RegisterTestingT(t)

	router := setupLimitedRouter(2)

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		router.ServeHTTP(rr, req)
	}

	rr := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusTooManyRequests))
}

func TestRateLimiter_UnconfiguredRoutePassesThrough(t *testing.T) {
	RegisterTestingT(t)

	gin.SetMode(gin.TestMode)

	limiter := middleware.NewRateLimiter(map[string]config.RateLimitConfig{}, nil)

	router := gin.New()
	router.Use(limiter.Middleware())
	router.GET("/open", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	for i := 0; i < 100; i++ {
		rr := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/open", nil)
		router.ServeHTTP(rr, req)

		Expect(rr.Code).To(Equal(http.StatusOK))
	}
}
