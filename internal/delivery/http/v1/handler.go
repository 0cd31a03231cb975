package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/quicktask-analytics/internal/services"
)

type Handler interface {
	HandleRoot(c *gin.Context)
	HandleHealth(c *gin.Context)

	HandleUserStats(c *gin.Context)
	HandleProductivityAnalysis(c *gin.Context)

	HandleRequestID(c *gin.Context)
	HandleAccessLog(c *gin.Context)
}

type handlerImpl struct {
	logger    zerolog.Logger
	analytics services.AnalyticsService
}

func New(
	logger zerolog.Logger,
	analyticsService services.AnalyticsService,
) Handler {
	return &handlerImpl{
		logger:    logger,
		analytics: analyticsService,
	}
}

// RegisterRoutes mounts the analytics endpoints and liveness probes on router.
func RegisterRoutes(router gin.IRouter, h Handler) {
	router.GET("/", h.HandleRoot)
	router.GET("/health", h.HandleHealth)
	router.GET("/user-stats/:userId", h.HandleUserStats)
	router.GET("/productivity-analysis/:userId", h.HandleProductivityAnalysis)
}
