package middleware

import (
	"net/http"

	"instruCal/pkg/logger"

	jsonres "instruCal/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the global echo HTTP error handler. Anything a handler
// did not map itself comes out as a uniform JSON envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Unhandled request error",
			"method", c.Request().Method,
			"path", c.Path(),
			err,
		)
	}

	code := http.StatusText(status)
	if jsonErr := c.JSON(status, jsonres.Error(code, message, nil)); jsonErr != nil {
		logger.Error("Failed to write error response", jsonErr)
	}
}
