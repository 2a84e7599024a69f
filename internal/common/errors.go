package common

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorHandler renders errors as {"error": "..."} using the HTTPError
// message when there is one, and a generic message otherwise.
func NewErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			switch m := he.Message.(type) {
			case string:
				message = m
			case error:
				message = m.Error()
			case nil:
				message = http.StatusText(code)
			default:
				message = fmt.Sprint(m)
			}
		} else {
			logger.Error().Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("unhandled error")
		}

		var sendErr error
		if c.Request().Method == http.MethodHead {
			sendErr = c.NoContent(code)
		} else {
			sendErr = c.JSON(code, ErrorResponse{Error: message})
		}
		if sendErr != nil {
			logger.Error().Err(sendErr).Msg("failed to write error response")
		}
	}
}
