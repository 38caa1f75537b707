package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	apperrors "github.com/healthone/clinic-api/pkg/errors"
)

// ErrorLogger logs every error handlers attached to the context. Internal
// errors are logged with their cause; client errors at debug.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, e := range c.Errors {
			appErr := apperrors.As(e.Err)
			level := zerolog.DebugLevel
			if appErr.Kind == apperrors.KindInternal {
				level = zerolog.ErrorLevel
			}

			log.WithLevel(level).
				Err(e.Err).
				Str("request_id", c.GetString(ContextRequestID)).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Str("code", appErr.Code()).
				Msg("Request error")
		}
	}
}
