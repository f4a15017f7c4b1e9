package docker

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
)

// DefaultSock is the conventional Docker Engine socket path.
const DefaultSock = "/var/run/docker.sock"

type Config struct {
	Sock string
}

// Container is the subset of a container listing this package exposes.
type Container struct {
	Name   string
	Image  string
	Status string
}

// Client talks to the Docker Engine API over a unix socket.
type Client struct {
	cli  *client.Client
	sock string
}

// NewClient connects to the engine socket named in config. The socket must exist.
func NewClient(config *Config) (*Client, error) {
	if config == nil || config.Sock == "" {
		return nil, fmt.Errorf("sock field in Config is empty")
	}

	if _, err := os.Stat(config.Sock); err != nil {
		return nil, fmt.Errorf("docker socket %s: %w", config.Sock, err)
	}

	host := "unix://" + config.Sock

	cli, err := client.NewClientWithOpts(
		client.WithAPIVersionNegotiation(),
		client.WithHost(host),
	)
	if err != nil {
		return nil, fmt.Errorf("error initializing Docker client: %w", err)
	}

	log.Debug("Docker client initialized", "socket", config.Sock)
	return &Client{cli: cli, sock: config.Sock}, nil
}

// ListContainers lists running containers.
func (c *Client) ListContainers(ctx context.Context) ([]Container, error) {
	if c == nil || c.cli == nil {
		return nil, fmt.Errorf("docker client is not initialized")
	}

	list, err := c.cli.ContainerList(ctx, container.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("error listing containers: %w", err)
	}

	containers := make([]Container, 0, len(list))
	for _, ctr := range list {
		containers = append(containers, Container{
			Name:   primaryName(ctr.Names),
			Image:  ctr.Image,
			Status: ctr.Status,
		})
	}

	return containers, nil
}

// Close releases the underlying HTTP transport.
func (c *Client) Close() error {
	if c == nil || c.cli == nil {
		return nil
	}
	return c.cli.Close()
}

// primaryName returns the first name without the leading slash the engine adds.
func primaryName(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return strings.TrimPrefix(names[0], "/")
}
