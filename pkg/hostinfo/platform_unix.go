//go:build linux || darwin || freebsd || netbsd || openbsd

package hostinfo

import (
	"golang.org/x/sys/unix"
)

// CurrentPlatform reads the platform through uname(2).
func CurrentPlatform() Platform {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return fallbackPlatform()
	}

	p := Platform{
		System:  unix.ByteSliceToString(u.Sysname[:]),
		Release: unix.ByteSliceToString(u.Release[:]),
		Machine: unix.ByteSliceToString(u.Machine[:]),
	}
	if p.System == "" || p.Machine == "" {
		fb := fallbackPlatform()
		if p.System == "" {
			p.System = fb.System
		}
		if p.Machine == "" {
			p.Machine = fb.Machine
		}
	}
	return p
}
