package middleware

import (
	"strconv"
	"time"

	"meditrack/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// RequestMetrics records latency per route template, so /doctors/:id stays a
// single series. Unmatched routes are grouped under "unmatched".
func RequestMetrics(m *metrics.ClinicMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
