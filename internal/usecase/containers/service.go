// Package containers implements the best-effort container listing use case.
package containers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/ops-status-dashboard/internal/boundaries/out"
	"github.com/bnema/ops-status-dashboard/internal/domain"
	"github.com/bnema/ops-status-dashboard/pkg/docker"
	"github.com/bnema/ops-status-dashboard/pkg/logger"
)

// Source selects how containers are listed.
type Source string

const (
	// SourceCLI shells out to the docker CLI.
	SourceCLI Source = "cli"
	// SourceAPI queries the Docker Engine API over its socket.
	SourceAPI Source = "api"
)

const (
	// DefaultTimeout bounds a single listing.
	DefaultTimeout = 3 * time.Second
	// DefaultBinary is the container CLI invoked by the CLI source.
	DefaultBinary = "docker"

	psFormat       = "{{.Names}}|{{.Image}}|{{.Status}}"
	fieldSeparator = "|"
	fieldCount     = 3
)

// ParseSource validates a source name. Empty selects SourceCLI.
func ParseSource(s string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case "", SourceCLI:
		return SourceCLI, nil
	case SourceAPI:
		return SourceAPI, nil
	default:
		return "", fmt.Errorf("%w: %q (expected %q or %q)", domain.ErrInvalidDockerSource, s, SourceCLI, SourceAPI)
	}
}

// Config holds the listing settings.
type Config struct {
	Source  Source
	Binary  string
	Timeout time.Duration
}

// Service implements the ContainerStatusService interface.
type Service struct {
	source  Source
	binary  string
	timeout time.Duration
	runner  out.CommandRunner
	engine  out.ContainerEngine
}

// NewService creates a container status service. The runner is required for
// SourceCLI and the engine for SourceAPI.
func NewService(cfg Config, runner out.CommandRunner, engine out.ContainerEngine) (*Service, error) {
	source, err := ParseSource(string(cfg.Source))
	if err != nil {
		return nil, err
	}

	s := &Service{
		source:  source,
		binary:  cfg.Binary,
		timeout: cfg.Timeout,
		runner:  runner,
		engine:  engine,
	}
	if s.binary == "" {
		s.binary = DefaultBinary
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}

	switch {
	case source == SourceCLI && runner == nil:
		return nil, fmt.Errorf("container source %q requires a command runner", source)
	case source == SourceAPI && engine == nil:
		return nil, fmt.Errorf("container source %q requires a container engine", source)
	}

	return s, nil
}

// Source returns the configured listing source.
func (s *Service) Source() Source {
	return s.source
}

// Command returns the argument vector used by the CLI source.
func (s *Service) Command() []string {
	return []string{s.binary, "ps", "--format", psFormat}
}

// Status lists containers. It never fails: engine problems are reported
// through an unavailable status.
func (s *Service) Status(ctx context.Context) domain.DockerStatus {
	var status domain.DockerStatus
	if s.source == SourceAPI {
		status = s.statusFromEngine(ctx)
	} else {
		status = s.statusFromCLI(ctx)
	}

	if !status.Available {
		logger.Debug("Container engine unavailable",
			"layer", "usecase",
			"usecase", "Status",
			"source", string(s.source),
			"in_container", docker.IsRunningInContainer(),
			"error", status.Error,
		)
	}

	return status
}

func (s *Service) statusFromCLI(ctx context.Context) domain.DockerStatus {
	res := s.runner.Run(ctx, s.Command(), s.timeout)
	if res.ExitCode != 0 {
		return domain.DockerUnavailable(res.Stderr)
	}
	return domain.DockerAvailable(ParseListing(res.Stdout))
}

func (s *Service) statusFromEngine(ctx context.Context) domain.DockerStatus {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	list, err := s.engine.ListContainers(ctx)
	if err != nil {
		return domain.DockerUnavailable(err.Error())
	}
	return domain.DockerAvailable(list)
}

// ParseListing turns name|image|status lines into summaries. Lines that do
// not split into exactly three fields are skipped.
func ParseListing(stdout string) []domain.ContainerSummary {
	containers := []domain.ContainerSummary{}

	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, fieldSeparator)
		if len(parts) != fieldCount {
			continue
		}

		containers = append(containers, domain.ContainerSummary{
			Name:   strings.TrimSpace(parts[0]),
			Image:  strings.TrimSpace(parts[1]),
			Status: strings.TrimSpace(parts[2]),
		})
	}

	return containers
}
