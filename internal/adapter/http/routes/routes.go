package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"checklistapp/internal/adapter/http/handler"
	"checklistapp/internal/adapter/http/middleware"
	"checklistapp/internal/core/telemetry"
	"checklistapp/pkg/config"
)

type HandlersConfig struct {
	ChecklistItemHandler *handler.ChecklistItemHandler
}

func SetupRouter(handlers HandlersConfig, metrics *telemetry.AppMetrics, logger *otelzap.Logger) *gin.Engine {
	return SetupRouterWithConfig(handlers, metrics, logger, config.GetDefaultConfig())
}

func SetupRouterWithConfig(handlers HandlersConfig, metrics *telemetry.AppMetrics, logger *otelzap.Logger, cfg *config.AppConfig) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(otelgin.Middleware("checklistapp"))

	if logger != nil {
		router.Use(middleware.RequestLogging(logger))
	}

	if metrics != nil {
		router.Use(middleware.Metrics(metrics))
	}

	if cfg.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimitConfigs, metrics)
		router.Use(limiter.Middleware())
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	setupChecklistRoutes(router, handlers.ChecklistItemHandler)

	return router
}

func setupChecklistRoutes(router *gin.Engine, checklistHandler *handler.ChecklistItemHandler) {
	v1 := router.Group("/v1")
	{
		v1.POST("/checklist", checklistHandler.Create)
		v1.GET("/checklist", checklistHandler.GetAll)
		v1.GET("/checklist/:id", checklistHandler.GetById)
		v1.PUT("/checklist/:id", checklistHandler.Update)
		v1.DELETE("/checklist/:id", checklistHandler.Delete)
	}
}

// SetupRouterForTests skips logging, metrics and rate limiting so suites
// exercise the bare request pipeline.
func SetupRouterForTests(handlers HandlersConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	setupChecklistRoutes(router, handlers.ChecklistItemHandler)

	return router
}
