package cli

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/ops-status-dashboard/internal/common"
)

// DefaultTimeout bounds each request made by the CLI.
const DefaultTimeout = 5 * time.Second

type App struct {
	BaseURL string
	Client  *http.Client
}

// NewClientApp initializes a client for the server at baseURL.
func NewClientApp(baseURL string, timeout time.Duration) *App {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &App{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

// DefaultBaseURL returns the URL of a server started with config on this host.
func DefaultBaseURL(config *common.Config) string {
	host := config.Http.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, config.Http.Port)
}
