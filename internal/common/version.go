package common

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckForNewVersion compares the local CLI version with the version reported
// by a running server. It returns an empty string when they match.
func CheckForNewVersion(local, remote string) string {
	local = strings.TrimSpace(local)
	remote = strings.TrimSpace(remote)
	if local == remote {
		return ""
	}

	lv, lerr := semver.NewVersion(local)
	rv, rerr := semver.NewVersion(remote)
	if lerr != nil || rerr != nil {
		return fmt.Sprintf("Server runs %s, this CLI is %s", remote, local)
	}

	switch lv.Compare(rv) {
	case -1:
		return fmt.Sprintf("A new version is available: %s (this CLI is %s)", rv, lv)
	case 1:
		return fmt.Sprintf("Server runs an older version: %s (this CLI is %s)", rv, lv)
	default:
		return ""
	}
}
