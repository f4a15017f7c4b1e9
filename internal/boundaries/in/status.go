// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (HTTP, CLI)
// and the business logic (use cases).
package in

import (
	"context"

	"github.com/bnema/ops-status-dashboard/internal/domain"
)

// FactsService reports process and host facts.
type FactsService interface {
	// Health is the liveness probe. It always reports ok.
	Health(ctx context.Context) domain.HealthStatus

	// Version reports the build metadata of the running binary.
	Version(ctx context.Context) domain.VersionInfo

	// System reports host identity, clock, uptime and platform.
	System(ctx context.Context) domain.SystemInfo
}

// ContainerStatusService reports the containers visible to the local engine.
type ContainerStatusService interface {
	// Status never fails; engine errors are reported inside the status.
	Status(ctx context.Context) domain.DockerStatus
}
