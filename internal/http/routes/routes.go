package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/pdf-watermarking/internal/config"
	"github.com/phambaophuc/pdf-watermarking/internal/http/handlers"
	"github.com/phambaophuc/pdf-watermarking/internal/http/middleware"
	"go.uber.org/zap"
)

type Router struct {
	watermarkHandler *handlers.WatermarkHandler
	logger           *zap.Logger
	config           *config.Config
}

func NewRouter(
	watermarkHandler *handlers.WatermarkHandler,
	logger *zap.Logger,
	config *config.Config,
) *Router {
	return &Router{
		watermarkHandler: watermarkHandler,
		logger:           logger,
		config:           config,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	if gin.Mode() == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.ErrorHandler(r.logger))
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.BodyLimit(r.config.Server.MaxBodySize))

	// Top-level route as consumed by existing clients
	router.POST("/addWatermark", r.watermarkHandler.AddWatermark)

	// API version 1
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", r.watermarkHandler.HealthCheck)
		v1.GET("/stats", r.watermarkHandler.GetStats)

		documents := v1.Group("/documents")
		{
			documents.POST("/watermark", r.watermarkHandler.AddWatermark)
			documents.POST("/watermark/async", r.watermarkHandler.AddWatermarkAsync)
			documents.GET("/jobs/:id", r.watermarkHandler.GetJobStatus)
		}
	}

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"message": "PDF watermarking is running",
		})
	})

	return router
}
