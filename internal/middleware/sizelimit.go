package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthone/clinic-api/pkg/httputil"
)

// SizeLimit rejects bodies larger than maxBytes. A declared length is checked
// up front; undeclared bodies are cut off while being read.
func SizeLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, httputil.Response{
				Success: false,
				Message: "Request body too large",
				Error:   "payload_too_large",
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
