// Package domain contains pure business types without external dependencies.
// These types are used throughout the application and have no tags or framework dependencies.
package domain

// ContainerSummary is one line of a container listing.
type ContainerSummary struct {
	Name   string
	Image  string
	Status string
}

// DockerStatus is the best-effort view of the local container engine.
// Containers is never nil; Error is set only when Available is false.
type DockerStatus struct {
	Available  bool
	Containers []ContainerSummary
	Error      string
}

// DockerUnavailable builds a status for an engine that could not be queried.
// An empty reason is replaced with DockerUnavailableMessage.
func DockerUnavailable(reason string) DockerStatus {
	if reason == "" {
		reason = DockerUnavailableMessage
	}
	return DockerStatus{
		Available:  false,
		Containers: []ContainerSummary{},
		Error:      reason,
	}
}

// DockerAvailable builds a status for a successful listing.
func DockerAvailable(containers []ContainerSummary) DockerStatus {
	if containers == nil {
		containers = []ContainerSummary{}
	}
	return DockerStatus{
		Available:  true,
		Containers: containers,
	}
}
