package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Logger logs one line per request and attaches a request scoped logger to
// the request context for log.Ctx. Bodies are never logged since they carry
// credentials and clinical data.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		requestID := c.GetString(ContextRequestID)

		reqLogger := log.With().Str("request_id", requestID).Logger()
		c.Request = c.Request.WithContext(reqLogger.WithContext(c.Request.Context()))

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		event := reqLogger.Info()
		msg := "Request processed"
		switch {
		case statusCode >= 500:
			event = reqLogger.Error()
			msg = "Server error"
		case statusCode >= 400:
			event = reqLogger.Warn()
			msg = "Client error"
		}

		if identity := IdentityFrom(c); identity != nil {
			event = event.Str("account_id", identity.ID.String()).Str("role", string(identity.Role))
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Str("ip", c.ClientIP()).
			Int("status", statusCode).
			Dur("duration", latency).
			Str("user_agent", c.Request.UserAgent()).
			Msg(msg)
	}
}
