package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oshokin/alarm-stats/internal/logger"
	"github.com/oshokin/alarm-stats/internal/metrics"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

// maxRequestIDLength bounds client-supplied request ids.
const maxRequestIDLength = 128

// RequestContext reuses or generates a request id, echoes it back and stores a
// request-scoped logger in the request context.
func RequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		c.Header(HeaderRequestID, requestID)

		ctx := logger.WithKV(c.Request.Context(), "request_id", requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// AccessLog logs each request and records its metrics once it is handled.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		metrics.ObserveRequest(c.FullPath(), c.Request.Method, status, duration)

		logger.InfoKV(c.Request.Context(), "HTTP request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", duration,
			"client_ip", c.ClientIP(),
		)
	}
}

// Recovery turns panics into 500 responses and logs them.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.ErrorKV(c.Request.Context(), "Panic while handling request",
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
