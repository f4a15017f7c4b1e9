package domain

import "time"

// AppName identifies this service in version reports.
const AppName = "ops-status-dashboard"

// HealthStatusOK is the only status the liveness probe reports.
const HealthStatusOK = "ok"

// HealthStatus is the liveness probe answer.
type HealthStatus struct {
	Status string
}

// VersionInfo describes the deployed build.
type VersionInfo struct {
	App     string
	Version string
	Commit  string
	BuiltAt string
}

// SystemInfo describes the host and the running process.
type SystemInfo struct {
	Hostname        string
	FQDN            string
	Time            time.Time
	UptimeSeconds   int64
	OS              string
	RuntimeVersion  string
	CPUArchitecture string
}
