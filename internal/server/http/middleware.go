package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reactorml/reactorserve/pkg/metric"
)

// MetricsMiddleware emits a count and latency timing per request, tagged with
// route and response status.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		tags := []string{
			"route:" + route,
			"status:" + strconv.Itoa(c.Writer.Status()),
		}
		metric.Count("http.request.total", 1, tags)
		metric.Timing("http.request.latency", time.Since(startTime), tags)
	}
}
