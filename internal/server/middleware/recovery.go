// file: internal/server/middleware/recovery.go
// version: 1.0.0
// guid: c86a99d0-c67f-4ec0-bd23-d05c1ea2bec1

package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// Recovery converts handler panics into 500 responses in the API envelope
// instead of tearing down the connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[ERROR] panic in %s %s (request %s): %v\n%s",
					c.Request.Method, c.Request.URL.Path, GetRequestID(c), rec, debug.Stack())
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"ok":    false,
					"error": fmt.Sprintf("Unexpected error: %v", rec),
				})
			}
		}()
		c.Next()
	}
}
