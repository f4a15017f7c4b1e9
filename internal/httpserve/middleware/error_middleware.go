package middleware

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/bnema/ops-status-dashboard/internal/httpserve/handlers"
	"github.com/bnema/ops-status-dashboard/pkg/logger"
)

// CustomHTTPErrorHandler renders every error as {"error": message}.
// Internal error details are logged, never sent to the client.
func CustomHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := statusText(code)

		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			code = he.Code
			message = statusText(code)
			if m, ok := he.Message.(string); ok && m != "" {
				message = m
			}
		case errors.Is(err, fs.ErrNotExist):
			code = http.StatusNotFound
			message = statusText(code)
		}

		if code >= http.StatusInternalServerError {
			logger.Error("Request failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err,
			)
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(code)
		} else {
			werr = c.JSON(code, handlers.ErrorResponse{Error: message})
		}
		if werr != nil {
			logger.Error("Failed to send error response", "error", werr, "statusCode", code)
		}
	}
}

// RecoverPanics turns handler panics into 500 responses and logs the stack.
func RecoverPanics() echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("Recovered from panic",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err,
				"stack", string(stack),
			)
			return err
		},
	})
}

func statusText(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return "Error"
}
