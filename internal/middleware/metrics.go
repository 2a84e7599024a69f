package middleware

import (
	"strconv"
	"time"

	"careops/internal/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records request counts and latency keyed by the matched route
// template, not the raw path, to keep label cardinality bounded.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			metrics.ObserveHTTP(
				c.Request().Method,
				route,
				strconv.Itoa(c.Response().Status),
				time.Since(start).Seconds(),
			)
			return nil
		}
	}
}
