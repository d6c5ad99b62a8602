package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mileusna/useragent"
)

// RequestLogMiddleware tags each request with an id and writes one
// access log line including the parsed client.
func RequestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		ua := useragent.Parse(c.Request.UserAgent())
		client := ua.Name
		if client == "" {
			client = "unknown"
		}

		log.Printf("[%s] %s %s %d %s client=%s/%s",
			requestID[:8],
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			client,
			ua.OS,
		)
	}
}
