package server

import (
	"fmt"
	"time"

	_ "github.com/joho/godotenv/autoload"

	dockeradapter "github.com/bnema/ops-status-dashboard/internal/adapters/out/docker"
	"github.com/bnema/ops-status-dashboard/internal/boundaries/in"
	"github.com/bnema/ops-status-dashboard/internal/boundaries/out"
	"github.com/bnema/ops-status-dashboard/internal/common"
	"github.com/bnema/ops-status-dashboard/internal/usecase/containers"
	"github.com/bnema/ops-status-dashboard/internal/usecase/facts"
	"github.com/bnema/ops-status-dashboard/pkg/hostinfo"
	"github.com/bnema/ops-status-dashboard/pkg/logger"
	"github.com/bnema/ops-status-dashboard/pkg/runner"
)

type App struct {
	Config     common.Config
	StartTime  time.Time
	Facts      in.FactsService
	Containers in.ContainerStatusService

	facts *facts.Service
}

// NewServerApp wires the use cases from config. The process start time is
// captured here, once.
func NewServerApp(config *common.Config) (*App, error) {
	return newServerApp(config, time.Now())
}

func newServerApp(config *common.Config, startTime time.Time) (*App, error) {
	if config == nil {
		return nil, fmt.Errorf("config is nil")
	}

	probe := hostinfo.NewProbe(hostinfo.WithFQDNTimeout(config.System.FQDNTimeoutDuration()))
	factsService := facts.NewService(startTime, probe)

	source, err := containers.ParseSource(config.Docker.Source)
	if err != nil {
		return nil, err
	}

	var (
		cmdRunner out.CommandRunner
		engine    out.ContainerEngine
	)
	switch source {
	case containers.SourceAPI:
		engine = dockeradapter.NewEngine(config.Docker.Sock)
	default:
		cmdRunner = runner.New()
	}

	containerService, err := containers.NewService(containers.Config{
		Source:  source,
		Binary:  config.Docker.Binary,
		Timeout: config.Docker.TimeoutDuration(),
	}, cmdRunner, engine)
	if err != nil {
		return nil, fmt.Errorf("error initializing container status: %w", err)
	}

	logger.Debug("Server app initialized",
		"docker_source", string(source),
		"web_dir", config.Http.WebDir,
		"fqdn_timeout", config.System.FQDNTimeoutDuration(),
	)

	return &App{
		Config:     *config,
		StartTime:  startTime,
		Facts:      factsService,
		Containers: containerService,
		facts:      factsService,
	}, nil
}

// GetUptime returns the process uptime rounded to the second.
func (a *App) GetUptime() string {
	if a.facts == nil {
		return time.Since(a.StartTime).Round(time.Second).String()
	}
	return a.facts.Uptime().Round(time.Second).String()
}
