package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestRecorder receives one observation per finished request.
type RequestRecorder interface {
	RecordHTTPRequest(method, path, status string, duration time.Duration)
}

// Metrics records request counts and latency per route pattern, so that
// /api/users/1 and /api/users/2 share one series.
func Metrics(recorder RequestRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		recorder.RecordHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
