//go:build !linux && !freebsd && !openbsd && !netbsd && !dragonfly

package sysinfo

import "time"

func (p *HostProber) Sysinfo() (SysinfoStats, bool) { return SysinfoStats{}, false }
func (p *HostProber) Sysctl(string) (string, bool) { return "", false }
func (p *HostProber) SysctlUint(string) (uint64, bool) { return 0, false }
func (p *HostProber) SysctlBootTime() (time.Time, bool) { return time.Time{}, false }
