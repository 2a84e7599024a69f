package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger logs one line per request. Handler errors are rendered through
// the echo error handler first so the logged status is the one the client saw.
func RequestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			reqLogger := logger.With().
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Str("method", req.Method).
				Str("route", c.Path()).
				Logger()
			c.SetRequest(req.WithContext(reqLogger.WithContext(req.Context())))

			if err := next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			event := reqLogger.Info()
			if status >= 500 {
				event = reqLogger.Error()
			} else if status >= 400 {
				event = reqLogger.Warn()
			}
			event.
				Str("path", req.URL.Path).
				Int("status", status).
				Dur("latency", time.Since(start)).
				Msg("request completed")
			return nil
		}
	}
}
