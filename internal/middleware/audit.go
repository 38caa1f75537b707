package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AccessLog records who touched clinical data: the route template, the
// caller and the outcome. It is mounted on the clinical route groups.
func AccessLog(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		event := log.Info().
			Str("event", "clinical_access").
			Str("resource", resource).
			Str("method", c.Request.Method).
			Str("route", c.FullPath()).
			Int("status", c.Writer.Status()).
			Str("request_id", c.GetString(ContextRequestID))

		if identity := IdentityFrom(c); identity != nil {
			event = event.Str("account_id", identity.ID.String()).Str("role", string(identity.Role))
		} else {
			event = event.Bool("anonymous", true)
		}
		for _, p := range c.Params {
			event = event.Str("param_"+p.Key, p.Value)
		}
		event.Msg("Clinical record access")
	}
}
