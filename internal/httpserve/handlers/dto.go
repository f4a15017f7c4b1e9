package handlers

import (
	"time"

	"github.com/bnema/ops-status-dashboard/internal/domain"
)

// TimeFormat renders time_utc with microseconds and an explicit offset.
const TimeFormat = "2006-01-02T15:04:05.000000-07:00"

type HealthResponse struct {
	Status string `json:"status"`
}

type VersionResponse struct {
	App     string `json:"app"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	BuiltAt string `json:"built_at"`
}

type SystemResponse struct {
	Hostname        string `json:"hostname"`
	FQDN            string `json:"fqdn"`
	TimeUTC         string `json:"time_utc"`
	UptimeSeconds   int64  `json:"uptime_seconds"`
	OS              string `json:"os"`
	RuntimeVersion  string `json:"runtime_version"`
	CPUArchitecture string `json:"cpu_architecture"`
}

type ContainerResponse struct {
	Name   string `json:"name"`
	Image  string `json:"image"`
	Status string `json:"status"`
}

type DockerResponse struct {
	Available  bool                `json:"available"`
	Containers []ContainerResponse `json:"containers"`
	Error      string              `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toHealthResponse(h domain.HealthStatus) HealthResponse {
	return HealthResponse{Status: h.Status}
}

func toVersionResponse(v domain.VersionInfo) VersionResponse {
	return VersionResponse{
		App:     v.App,
		Version: v.Version,
		Commit:  v.Commit,
		BuiltAt: v.BuiltAt,
	}
}

func toSystemResponse(s domain.SystemInfo) SystemResponse {
	return SystemResponse{
		Hostname:        s.Hostname,
		FQDN:            s.FQDN,
		TimeUTC:         s.Time.In(time.UTC).Format(TimeFormat),
		UptimeSeconds:   s.UptimeSeconds,
		OS:              s.OS,
		RuntimeVersion:  s.RuntimeVersion,
		CPUArchitecture: s.CPUArchitecture,
	}
}

func toDockerResponse(d domain.DockerStatus) DockerResponse {
	containers := make([]ContainerResponse, 0, len(d.Containers))
	for _, c := range d.Containers {
		containers = append(containers, ContainerResponse{
			Name:   c.Name,
			Image:  c.Image,
			Status: c.Status,
		})
	}
	return DockerResponse{
		Available:  d.Available,
		Containers: containers,
		Error:      d.Error,
	}
}
