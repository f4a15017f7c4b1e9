// Package facts implements the health, version and system-info use cases.
package facts

import (
	"context"
	"os"
	"time"

	"github.com/bnema/ops-status-dashboard/internal/boundaries/out"
	"github.com/bnema/ops-status-dashboard/internal/domain"
	"github.com/bnema/ops-status-dashboard/pkg/hostinfo"
	"github.com/bnema/ops-status-dashboard/pkg/logger"
	"github.com/bnema/ops-status-dashboard/pkg/version"
)

// Environment variables read by Version.
const (
	EnvAppVersion = "APP_VERSION"
	EnvGitSHA     = "GIT_SHA"
	EnvBuiltTime  = "BUILT_TIME"
)

const (
	defaultVersion = "dev"
	defaultUnknown = "unknown"
)

// Service implements the FactsService interface.
type Service struct {
	startTime time.Time
	host      out.HostProbe
	now       func() time.Time
	lookupEnv func(string) (string, bool)
	build     version.Info
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithEnv replaces os.LookupEnv.
func WithEnv(lookup func(string) (string, bool)) Option {
	return func(s *Service) { s.lookupEnv = lookup }
}

// WithBuildInfo replaces the ldflags build information used as version defaults.
func WithBuildInfo(info version.Info) Option {
	return func(s *Service) { s.build = info }
}

// NewService creates a facts service. startTime is the process start and is never changed.
func NewService(startTime time.Time, host out.HostProbe, opts ...Option) *Service {
	s := &Service{
		startTime: startTime,
		host:      host,
		now:       time.Now,
		lookupEnv: os.LookupEnv,
		build:     version.Get(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Health reports the liveness status.
func (s *Service) Health(_ context.Context) domain.HealthStatus {
	return domain.HealthStatus{Status: domain.HealthStatusOK}
}

// Version reports build metadata. Each field falls back independently:
// environment, then build info, then dev/unknown.
func (s *Service) Version(_ context.Context) domain.VersionInfo {
	return domain.VersionInfo{
		App:     domain.AppName,
		Version: s.env(EnvAppVersion, s.build.Version, defaultVersion),
		Commit:  s.env(EnvGitSHA, s.build.Commit, defaultUnknown),
		BuiltAt: s.env(EnvBuiltTime, s.build.BuildDate, defaultUnknown),
	}
}

// System reports host identity, the current UTC time, uptime and platform.
func (s *Service) System(ctx context.Context) domain.SystemInfo {
	now := s.now()
	hostname := s.host.Hostname()
	platform := s.host.Platform()

	info := domain.SystemInfo{
		Hostname:        hostname,
		FQDN:            s.host.FQDN(ctx, hostname),
		Time:            now.UTC(),
		UptimeSeconds:   s.uptimeSeconds(now),
		OS:              platform.String(),
		RuntimeVersion:  hostinfo.RuntimeVersion(),
		CPUArchitecture: platform.Machine,
	}

	logger.Debug("System facts collected",
		"layer", "usecase",
		"usecase", "System",
		"hostname", info.Hostname,
		"uptime_seconds", info.UptimeSeconds,
	)

	return info
}

// Uptime returns the time elapsed since the process started.
func (s *Service) Uptime() time.Duration {
	d := s.now().Sub(s.startTime)
	if d < 0 {
		return 0
	}
	return d
}

func (s *Service) uptimeSeconds(now time.Time) int64 {
	d := now.Sub(s.startTime)
	if d < 0 {
		return 0
	}
	return int64(d / time.Second)
}

func (s *Service) env(key, buildDefault, fallback string) string {
	if val, ok := s.lookupEnv(key); ok && val != "" {
		return val
	}
	if buildDefault != "" {
		return buildDefault
	}
	return fallback
}
