package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"titanguard/internal/metrics"
)

// Prometheus records request counts and latency per route template, so
// /api/predict aggregates under one label instead of one series per caller.
func Prometheus() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.RecordHTTPRequest(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
