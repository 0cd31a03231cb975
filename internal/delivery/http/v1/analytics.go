package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/quicktask-analytics/internal/analytics"
	"github.com/adanyl0v/quicktask-analytics/internal/services"
)

type getUserStatsResponse struct {
	UserID string `json:"userId"`
	analytics.Stats
}

func newGetUserStatsResponse(stats *services.UserStats) getUserStatsResponse {
	return getUserStatsResponse{
		UserID: stats.UserID,
		Stats:  stats.Stats,
	}
}

type getProductivityAnalysisResponse struct {
	UserID          string                 `json:"userId"`
	GroupBy         string                 `json:"groupBy"`
	Trends          []analytics.TrendPoint `json:"trends"`
	TotalDataPoints int                    `json:"totalDataPoints"`
	Message         string                 `json:"message,omitempty"`
}

func newGetProductivityAnalysisResponse(result *services.ProductivityAnalysis) getProductivityAnalysisResponse {
	trends := result.Trends
	if trends == nil {
		trends = []analytics.TrendPoint{}
	}
	return getProductivityAnalysisResponse{
		UserID:          result.UserID,
		GroupBy:         string(result.GroupBy),
		Trends:          trends,
		TotalDataPoints: result.TotalDataPoints,
		Message:         result.Message,
	}
}

func (h *handlerImpl) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "QuickTask Analytics Service is running",
		"status":  "OK",
	})
}

func (h *handlerImpl) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "analytics",
	})
}

func (h *handlerImpl) HandleUserStats(c *gin.Context) {
	userID := c.Param("userId")

	stats, err := h.analytics.GetUserStats(c.Request.Context(), userID)
	if err != nil {
		apiErr := translateError(err)
		if apiErr.Code >= http.StatusInternalServerError {
			h.logger.Error().
				Err(err).
				Str("user_id", userID).
				Msg("failed to get user stats")
		}
		abort(c, apiErr)
		return
	}

	c.JSON(http.StatusOK, newGetUserStatsResponse(stats))
}

func (h *handlerImpl) HandleProductivityAnalysis(c *gin.Context) {
	userID := c.Param("userId")

	// Only a missing parameter defaults to day; an empty one is rejected.
	groupBy, ok := c.GetQuery("groupBy")
	if !ok {
		groupBy = string(analytics.GroupByDay)
	}

	result, err := h.analytics.GetProductivityAnalysis(c.Request.Context(), userID, groupBy)
	if err != nil {
		apiErr := translateError(err)
		if apiErr.Code >= http.StatusInternalServerError {
			h.logger.Error().
				Err(err).
				Str("user_id", userID).
				Str("group_by", groupBy).
				Msg("failed to get productivity analysis")
		}
		abort(c, apiErr)
		return
	}

	c.JSON(http.StatusOK, newGetProductivityAnalysisResponse(result))
}
