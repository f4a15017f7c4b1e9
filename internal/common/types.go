package common

import (
	"net"
	"time"
)

type Config struct {
	General GeneralConfig `yaml:"General"`
	Http    HttpConfig    `yaml:"Http"`
	Docker  DockerConfig  `yaml:"Docker"`
	System  SystemConfig  `yaml:"System"`
}

type GeneralConfig struct {
	LogLevel string `yaml:"logLevel"`
	RunEnv   string `yaml:"-"` // come from env
}

type HttpConfig struct {
	Host            string `yaml:"host"`
	Port            string `yaml:"port"`
	WebDir          string `yaml:"webDir"`
	ShutdownTimeout int    `yaml:"shutdownTimeout"` // seconds
}

type DockerConfig struct {
	Source  string `yaml:"source"` // cli | api
	Binary  string `yaml:"binary"`
	Sock    string `yaml:"sock"`
	Timeout int    `yaml:"timeout"` // seconds
}

type SystemConfig struct {
	FQDNTimeout int `yaml:"fqdnTimeout"` // seconds
}

// Address returns the listen address, host:port.
func (h HttpConfig) Address() string {
	return net.JoinHostPort(h.Host, h.Port)
}

func (h HttpConfig) ShutdownDuration() time.Duration {
	return seconds(h.ShutdownTimeout, DefaultShutdownTimeout)
}

func (d DockerConfig) TimeoutDuration() time.Duration {
	return seconds(d.Timeout, DefaultDockerTimeout)
}

func (s SystemConfig) FQDNTimeoutDuration() time.Duration {
	return seconds(s.FQDNTimeout, DefaultFQDNTimeout)
}

func seconds(n, fallback int) time.Duration {
	if n <= 0 {
		n = fallback
	}
	return time.Duration(n) * time.Second
}
