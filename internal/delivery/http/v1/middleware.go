package v1

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adanyl0v/quicktask-analytics/internal/metrics"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDCtxKey = "request_id"
)

func (h *handlerImpl) HandleRequestID(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestUUID, err := uuid.NewV7()
		if err != nil {
			h.logger.Error().
				Err(err).
				Msg("failed to generate request uuid")
			requestUUID = uuid.New()
		}
		requestID = requestUUID.String()
	}

	c.Set(requestIDCtxKey, requestID)
	c.Header(requestIDHeader, requestID)
	c.Next()
}

func (h *handlerImpl) HandleAccessLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	elapsed := time.Since(start)

	// Unmatched paths have no route template; keep them in one label.
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	status := c.Writer.Status()
	metrics.RecordRequest(route, strconv.Itoa(status), elapsed.Seconds())

	event := h.logger.Info()
	if status >= 500 {
		event = h.logger.Error()
	} else if status >= 400 {
		event = h.logger.Warn()
	}
	event.
		Str("request_id", c.GetString(requestIDCtxKey)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("route", route).
		Int("status", status).
		Dur("elapsed", elapsed).
		Str("client_ip", c.ClientIP()).
		Msg("handled request")
}
