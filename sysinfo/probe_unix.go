//go:build unix

package sysinfo

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func (p *HostProber) Uname() (Uname, bool) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		p.miss("uname", fmt.Errorf("uname: %w", err))
		return Uname{}, false
	}
	return Uname{
		Sysname: unix.ByteSliceToString(uts.Sysname[:]),
		Release: unix.ByteSliceToString(uts.Release[:]),
		Machine: unix.ByteSliceToString(uts.Machine[:]),
	}, true
}
