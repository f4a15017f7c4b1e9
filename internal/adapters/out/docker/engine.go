// Package docker implements the container engine adapter using the Docker API.
package docker

import (
	"context"
	"fmt"

	"github.com/bnema/ops-status-dashboard/internal/domain"
	dockerclient "github.com/bnema/ops-status-dashboard/pkg/docker"
	"github.com/bnema/ops-status-dashboard/pkg/logger"
)

// Lister is the subset of the Docker client used by Engine.
type Lister interface {
	ListContainers(ctx context.Context) ([]dockerclient.Container, error)
	Close() error
}

// Dialer opens a connection to the engine.
type Dialer func() (Lister, error)

// Engine implements the ContainerEngine interface. It connects on every call,
// so a socket mounted after startup is picked up.
type Engine struct {
	dial Dialer
}

// NewEngine creates an engine adapter for the socket at sock.
func NewEngine(sock string) *Engine {
	if sock == "" {
		sock = dockerclient.DefaultSock
	}
	return NewEngineWithDialer(func() (Lister, error) {
		return dockerclient.NewClient(&dockerclient.Config{Sock: sock})
	})
}

// NewEngineWithDialer creates an engine adapter with a custom dialer (for testing).
func NewEngineWithDialer(dial Dialer) *Engine {
	return &Engine{dial: dial}
}

// ListContainers lists running containers.
func (e *Engine) ListContainers(ctx context.Context) ([]domain.ContainerSummary, error) {
	cli, err := e.dial()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEngineUnreachable, err)
	}
	defer func() {
		if cerr := cli.Close(); cerr != nil {
			logger.Debug("Failed to close docker client", "layer", "adapter", "adapter", "docker", "error", cerr)
		}
	}()

	list, err := cli.ListContainers(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ContainerSummary, 0, len(list))
	for _, c := range list {
		summaries = append(summaries, domain.ContainerSummary{
			Name:   c.Name,
			Image:  c.Image,
			Status: c.Status,
		})
	}

	logger.Debug("Containers listed",
		"layer", "adapter",
		"adapter", "docker",
		"action", "ListContainers",
		"count", len(summaries),
	)

	return summaries, nil
}
