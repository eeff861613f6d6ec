package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kressgarten/growops/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(batchHandler *handlers.BatchHandler, forecastHandler *handlers.ForecastHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api/v1")
	{
		api.GET("/batches", batchHandler.List)
		api.POST("/sowings", batchHandler.Sow)
		api.POST("/batches/:id/harvest", batchHandler.Harvest)
		api.POST("/batches/:id/status", batchHandler.Status)
		api.GET("/forecasts", forecastHandler.List)
		api.POST("/forecasts/:id/override", forecastHandler.Override)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
