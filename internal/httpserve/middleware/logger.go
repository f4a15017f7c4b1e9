package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/bnema/ops-status-dashboard/pkg/logger"
)

// HTTPAccessLogger logs each request through pkg/logger. Liveness probes are
// logged at debug level only.
func HTTPAccessLogger(quietPaths ...string) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			keyvals := []interface{}{
				"type", "http",
				"remote_ip", v.RemoteIP,
				"method", v.Method,
				"URI", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if MatchesPath(quietPaths, c.Request().URL.Path) {
				logger.Debug("request", keyvals...)
				return nil
			}
			logger.Info("request", keyvals...)
			return nil
		},
	})
}
