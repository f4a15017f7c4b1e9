package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SecureRoutes sets the security headers. The dashboard only loads its own
// scripts and styles and only talks to its own origin.
func SecureRoutes() echo.MiddlewareFunc {
	self := "'self'"
	imgSrc := "'self' data:"

	csp := fmt.Sprintf(
		"default-src %s; style-src %s; img-src %s; script-src %s; connect-src %s; frame-ancestors 'none'",
		self, self, imgSrc, self, self,
	)

	return middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ContentSecurityPolicy: csp,
		ReferrerPolicy:        "no-referrer",
	})
}

// NoStore marks responses as never cacheable. Status data is only valid at
// the time it was collected.
func NoStore() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderCacheControl, "no-store")
			h.Set("Pragma", "no-cache")
			return next(c)
		}
	}
}

// MatchesExactPath reports whether path is exactly one of paths.
func MatchesExactPath(paths []string, path string) bool {
	for _, p := range paths {
		if path == p {
			return true
		}
	}
	return false
}

// MatchesPath reports whether path is one of paths, ignoring a trailing slash.
func MatchesPath(paths []string, path string) bool {
	return MatchesExactPath(paths, strings.TrimSuffix(path, "/"))
}
