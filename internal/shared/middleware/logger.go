package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"book-management/internal/shared/response"
)

// Logger writes one access line per request, at warn for 4xx and error for 5xx.
// Failed requests carry the public error code and the locale the message was rendered in.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path += "?" + c.Request.URL.RawQuery
		}

		c.Next()

		status := c.Writer.Status()
		event := accessEvent(status).
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("route", c.FullPath()).
			Int("status", status).
			Dur("latency_ms", time.Since(start)).
			Str("ip", c.ClientIP())

		if code := c.GetString(response.ErrorCodeKey); code != "" {
			event = event.
				Str("error_code", code).
				Str("locale", c.Writer.Header().Get("Content-Language"))
		}

		event.Msg("HTTP Request")
	}
}

func accessEvent(status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}
