package common

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bnema/ops-status-dashboard/pkg/parser"
)

// Defaults applied before the config file and the environment.
const (
	DefaultHost            = ""
	DefaultPort            = "8000"
	DefaultWebDir          = "web"
	DefaultShutdownTimeout = 10
	DefaultDockerSource    = "cli"
	DefaultDockerBinary    = "docker"
	DefaultDockerSock      = "/var/run/docker.sock"
	DefaultDockerTimeout   = 3
	DefaultFQDNTimeout     = 1
	DefaultLogLevel        = "info"
	DefaultConfigFile      = "config.yml"
)

// Environment overrides.
const (
	EnvConfig       = "OPS_CONFIG"
	EnvHTTPHost     = "OPS_HTTP_HOST"
	EnvHTTPPort     = "OPS_HTTP_PORT"
	EnvWebDir       = "OPS_WEB_DIR"
	EnvLogLevel     = "OPS_LOG_LEVEL"
	EnvDockerSource = "OPS_DOCKER_SOURCE"
	EnvDockerBinary = "OPS_DOCKER_BINARY"
	EnvDockerSock   = "OPS_DOCKER_SOCK"
	EnvRunEnv       = "ENV"
)

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel: DefaultLogLevel,
			RunEnv:   "prod",
		},
		Http: HttpConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			WebDir:          DefaultWebDir,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Docker: DockerConfig{
			Source:  DefaultDockerSource,
			Binary:  DefaultDockerBinary,
			Sock:    DefaultDockerSock,
			Timeout: DefaultDockerTimeout,
		},
		System: SystemConfig{
			FQDNTimeout: DefaultFQDNTimeout,
		},
	}
}

// LoadConfig builds the configuration from defaults, the config file and the
// process environment, in increasing priority. path may be empty.
func LoadConfig(path string) (*Config, error) {
	return loadConfig(path, os.LookupEnv)
}

func loadConfig(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	config := DefaultConfig()

	explicit := path != ""
	if !explicit {
		if p, ok := lookupEnv(EnvConfig); ok && p != "" {
			path = p
			explicit = true
		} else {
			path = DefaultConfigFile
		}
	}

	err := readAndUnmarshalConfig(os.DirFS(filepath.Dir(path)), filepath.Base(path), config)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// no config file, defaults and env only
	default:
		return nil, err
	}

	config.applyEnv(lookupEnv)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func readAndUnmarshalConfig(fsys fs.FS, filePath string, config *Config) error {
	err := parser.ParseYAMLFile(fsys, filePath, config)
	if err != nil {
		return fmt.Errorf("error reading and unmarshaling configuration file: %w", err)
	}
	return nil
}

func (config *Config) applyEnv(lookupEnv func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookupEnv(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	set(EnvHTTPHost, &config.Http.Host)
	set(EnvHTTPPort, &config.Http.Port)
	set(EnvWebDir, &config.Http.WebDir)
	set(EnvLogLevel, &config.General.LogLevel)
	set(EnvDockerSource, &config.Docker.Source)
	set(EnvDockerBinary, &config.Docker.Binary)
	set(EnvDockerSock, &config.Docker.Sock)
	set(EnvRunEnv, &config.General.RunEnv)
}

// Validate checks the values that cannot be defaulted away.
func (config *Config) Validate() error {
	port, err := strconv.Atoi(config.Http.Port)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("invalid http port %q: must be a number between 0 and 65535", config.Http.Port)
	}

	config.Docker.Source = strings.ToLower(strings.TrimSpace(config.Docker.Source))
	switch config.Docker.Source {
	case "":
		config.Docker.Source = DefaultDockerSource
	case "cli", "api":
	default:
		return fmt.Errorf("invalid docker source %q: must be cli or api", config.Docker.Source)
	}

	if config.Docker.Binary == "" {
		config.Docker.Binary = DefaultDockerBinary
	}
	if config.Docker.Sock == "" {
		config.Docker.Sock = DefaultDockerSock
	}
	if config.Http.WebDir == "" {
		config.Http.WebDir = DefaultWebDir
	}

	return nil
}

// IsDev reports whether the process runs with ENV=dev.
func (config *Config) IsDev() bool {
	return config.General.RunEnv == "dev"
}
