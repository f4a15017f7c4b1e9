package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	config, err := loadConfig("", envFrom(nil))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
	assert.Equal(t, ":8000", config.Http.Address())
	assert.Equal(t, 10*time.Second, config.Http.ShutdownDuration())
	assert.Equal(t, 3*time.Second, config.Docker.TimeoutDuration())
	assert.Equal(t, time.Second, config.System.FQDNTimeoutDuration())
	assert.False(t, config.IsDev())
}

func TestLoadConfig_FileBeatsDefaults(t *testing.T) {
	path := writeConfig(t, `
General:
  logLevel: debug
Http:
  host: 127.0.0.1
  port: "9000"
Docker:
  source: api
  sock: /run/docker.sock
  timeout: 5
`)

	config, err := loadConfig(path, envFrom(nil))

	require.NoError(t, err)
	assert.Equal(t, "debug", config.General.LogLevel)
	assert.Equal(t, "127.0.0.1:9000", config.Http.Address())
	assert.Equal(t, DefaultWebDir, config.Http.WebDir)
	assert.Equal(t, "api", config.Docker.Source)
	assert.Equal(t, "/run/docker.sock", config.Docker.Sock)
	assert.Equal(t, DefaultDockerBinary, config.Docker.Binary)
	assert.Equal(t, 5*time.Second, config.Docker.TimeoutDuration())
}

func TestLoadConfig_EnvBeatsFile(t *testing.T) {
	path := writeConfig(t, `
Http:
  port: "9000"
  webDir: /srv/web
Docker:
  source: api
`)

	config, err := loadConfig(path, envFrom(map[string]string{
		EnvHTTPPort:     "9100",
		EnvDockerSource: "CLI",
		EnvDockerBinary: "podman",
		EnvLogLevel:     "warn",
		EnvRunEnv:       "dev",
		EnvWebDir:       "  ",
	}))

	require.NoError(t, err)
	assert.Equal(t, "9100", config.Http.Port)
	assert.Equal(t, "/srv/web", config.Http.WebDir)
	assert.Equal(t, "cli", config.Docker.Source)
	assert.Equal(t, "podman", config.Docker.Binary)
	assert.Equal(t, "warn", config.General.LogLevel)
	assert.True(t, config.IsDev())
}

func TestLoadConfig_PathFromEnv(t *testing.T) {
	path := writeConfig(t, "Http:\n  port: \"8123\"\n")

	config, err := loadConfig("", envFrom(map[string]string{EnvConfig: path}))

	require.NoError(t, err)
	assert.Equal(t, "8123", config.Http.Port)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		errMsg  string
	}{
		{
			name:    "malformed yaml",
			content: "Http: [port",
			errMsg:  "error reading and unmarshaling configuration file",
		},
		{
			name:    "unknown key",
			content: "Http:\n  prot: \"8000\"\n",
			errMsg:  "field prot not found",
		},
		{
			name:    "invalid source",
			content: "Docker:\n  source: kubernetes\n",
			errMsg:  "invalid docker source",
		},
		{
			name:    "non numeric port from env",
			content: "",
			env:     map[string]string{EnvHTTPPort: "http"},
			errMsg:  "invalid http port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			_, err := loadConfig(path, envFrom(tt.env))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadConfig_ExplicitMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yml"), envFrom(nil))
	assert.Error(t, err)
}

func TestCheckForNewVersion(t *testing.T) {
	tests := []struct {
		name     string
		local    string
		remote   string
		contains string
	}{
		{"same version", "1.2.0", "1.2.0", ""},
		{"update available", "1.2.0", "1.3.0", "A new version is available: 1.3.0"},
		{"server older", "v2.0.0", "1.9.9", "older version"},
		{"equal with prefix", "v1.0.0", "1.0.0", ""},
		{"unparsable", "dev", "1.0.0", "Server runs 1.0.0, this CLI is dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := CheckForNewVersion(tt.local, tt.remote)
			if tt.contains == "" {
				assert.Empty(t, msg)
				return
			}
			assert.Contains(t, msg, tt.contains)
		})
	}
}
