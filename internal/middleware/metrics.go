package middleware

import (
	"time"

	"furls/dashboard/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency by route template, so path
// parameters do not explode label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.RecordHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
