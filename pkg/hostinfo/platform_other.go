//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package hostinfo

// CurrentPlatform reports GOOS and GOARCH where uname is not available.
func CurrentPlatform() Platform {
	return fallbackPlatform()
}
