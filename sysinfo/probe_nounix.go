//go:build !unix && !windows

package sysinfo

func (p *HostProber) Uname() (Uname, bool) { return Uname{}, false }
