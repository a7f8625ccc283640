// file: internal/server/middleware/requestid.go
// version: 1.0.0
// guid: 70927bde-b7e7-4529-9957-0db0bfebc6aa

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

const requestIDKey = "request_id"

// RequestID assigns each request a ULID and echoes it in the response so log
// lines and client reports can be correlated. An incoming X-Request-ID is
// kept as-is.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = ulid.Make().String()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// GetRequestID returns the request's correlation ID, or "" outside the
// middleware chain.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
