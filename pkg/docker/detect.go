package docker

import (
	"os"
)

// containerMarkers are files whose presence indicates a containerized process.
var containerMarkers = []string{"/.iscontainer", "/.dockerenv", "/run/.containerenv"}

func fileExists(filepath string) bool {
	_, err := os.Stat(filepath)
	return !os.IsNotExist(err)
}

// IsRunningInContainer reports whether this process appears to run inside a container.
func IsRunningInContainer() bool {
	for _, marker := range containerMarkers {
		if fileExists(marker) {
			return true
		}
	}
	return false
}
