package httpserve

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/bnema/ops-status-dashboard/internal/httpserve/handlers"
	"github.com/bnema/ops-status-dashboard/internal/httpserve/middleware"
	"github.com/bnema/ops-status-dashboard/internal/server"
)

const (
	HealthPath  = "/health"
	VersionPath = "/version"
	SystemPath  = "/system"
	DockerPath  = "/docker"
)

var apiPaths = []string{HealthPath, VersionPath, SystemPath, DockerPath}

// NewRouter builds the echo instance serving the status API and the dashboard.
func NewRouter(a *server.App) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler()

	e.Use(middleware.HTTPAccessLogger(HealthPath))
	e.Use(middleware.RecoverPanics())
	e.Use(middleware.SecureRoutes())
	e.Use(echomw.StaticWithConfig(echomw.StaticConfig{
		Root:  a.Config.Http.WebDir,
		Index: "index.html",
		HTML5: true,
		Skipper: func(c echo.Context) bool {
			return middleware.MatchesExactPath(apiPaths, c.Request().URL.Path)
		},
	}))

	return RegisterRoutes(e, a)
}

func RegisterRoutes(e *echo.Echo, a *server.App) *echo.Echo {
	h := handlers.NewStatusHandler(a.Facts, a.Containers)
	noStore := middleware.NoStore()

	e.GET(HealthPath, h.Health, noStore)
	e.GET(VersionPath, h.Version, noStore)
	e.GET(SystemPath, h.System, noStore)
	e.GET(DockerPath, h.Docker, noStore)

	return e
}
