// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (subprocesses, the Docker Engine API, etc.).
package out

import (
	"context"
	"time"

	"github.com/bnema/ops-status-dashboard/internal/domain"
	"github.com/bnema/ops-status-dashboard/pkg/hostinfo"
	"github.com/bnema/ops-status-dashboard/pkg/runner"
)

// CommandRunner executes an external command. Implementations never fail:
// invocation problems are reported through the result's exit code.
type CommandRunner interface {
	Run(ctx context.Context, argv []string, timeout time.Duration) runner.Result
}

// ContainerEngine lists containers through a container engine API.
type ContainerEngine interface {
	ListContainers(ctx context.Context) ([]domain.ContainerSummary, error)
}

// HostProbe reads host identity and platform facts.
type HostProbe interface {
	Hostname() string
	// FQDN must return within its own bound, falling back to hostname.
	FQDN(ctx context.Context, hostname string) string
	Platform() hostinfo.Platform
}
