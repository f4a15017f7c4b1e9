package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/ops-status-dashboard/internal/common"
	"github.com/bnema/ops-status-dashboard/internal/domain"
	"github.com/bnema/ops-status-dashboard/internal/usecase/containers"
)

func TestNewServerApp_DefaultConfig(t *testing.T) {
	app, err := NewServerApp(common.DefaultConfig())

	require.NoError(t, err)
	require.NotNil(t, app.Facts)
	require.NotNil(t, app.Containers)
	assert.Equal(t, domain.HealthStatus{Status: "ok"}, app.Facts.Health(context.Background()))

	svc, ok := app.Containers.(*containers.Service)
	require.True(t, ok)
	assert.Equal(t, containers.SourceCLI, svc.Source())
	assert.Equal(t, []string{"docker", "ps", "--format", "{{.Names}}|{{.Image}}|{{.Status}}"}, svc.Command())
}

func TestNewServerApp_APISource(t *testing.T) {
	config := common.DefaultConfig()
	config.Docker.Source = "api"
	config.Docker.Sock = t.TempDir() + "/missing.sock"

	app, err := NewServerApp(config)
	require.NoError(t, err)

	status := app.Containers.Status(context.Background())
	assert.False(t, status.Available)
	assert.NotNil(t, status.Containers)
	assert.Contains(t, status.Error, "missing.sock")
}

func TestNewServerApp_InvalidSource(t *testing.T) {
	config := common.DefaultConfig()
	config.Docker.Source = "kubernetes"

	_, err := NewServerApp(config)
	assert.ErrorIs(t, err, domain.ErrInvalidDockerSource)
}

func TestNewServerApp_NilConfig(t *testing.T) {
	_, err := NewServerApp(nil)
	assert.Error(t, err)
}

func TestApp_StartTimeFixed(t *testing.T) {
	start := time.Now().Add(-2 * time.Minute)
	app, err := newServerApp(common.DefaultConfig(), start)
	require.NoError(t, err)

	assert.Equal(t, start, app.StartTime)
	assert.Equal(t, "2m0s", app.GetUptime())
	assert.GreaterOrEqual(t, app.Facts.System(context.Background()).UptimeSeconds, int64(120))
}
