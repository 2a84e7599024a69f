package middleware

import (
	"github.com/labstack/echo/v4"
)

const (
	HeaderAPIVersion   = "X-API-Version"
	HeaderBuildVersion = "X-CareOps-Build"
)

// VersionHeader stamps API responses with the API version and the build
// that served them.
func VersionHeader(apiVersion, build string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(HeaderAPIVersion, apiVersion)
			if build != "" {
				c.Response().Header().Set(HeaderBuildVersion, build)
			}
			return next(c)
		}
	}
}
