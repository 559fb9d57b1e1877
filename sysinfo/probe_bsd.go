//go:build freebsd || openbsd || netbsd || dragonfly

package sysinfo

import (
	"encoding/binary"
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

func (p *HostProber) Sysinfo() (SysinfoStats, bool) { return SysinfoStats{}, false }

func (p *HostProber) Sysctl(name string) (string, bool) {
	value, err := unix.Sysctl(name)
	if err != nil {
		p.miss("sysctl "+name, err)
		return "", false
	}
	p.log.Debug("probe", "sysctl", name, "ok", value != "")
	return value, value != ""
}

// SysctlUint reads an integer sysctl. Counters such as
// vm.stats.vm.v_free_count are 4 bytes wide while hw.physmem is 8, so the
// payload is decoded by length.
func (p *HostProber) SysctlUint(name string) (uint64, bool) {
	raw, err := unix.SysctlRaw(name)
	if err != nil {
		p.miss("sysctl "+name, err)
		return 0, false
	}
	value, ok := decodeSysctlUint(raw)
	if !ok {
		p.miss("sysctl "+name, fmt.Errorf("unexpected %d-byte value", len(raw)))
		return 0, false
	}
	p.log.Debug("probe", "sysctl", name, "ok", true)
	return value, true
}

func decodeSysctlUint(raw []byte) (uint64, bool) {
	switch len(raw) {
	case 4:
		return uint64(binary.NativeEndian.Uint32(raw)), true
	case 8:
		return binary.NativeEndian.Uint64(raw), true
	}
	return 0, false
}

func (p *HostProber) SysctlBootTime() (time.Time, bool) {
	tv, err := unix.SysctlTimeval("kern.boottime")
	if err != nil {
		p.miss("sysctl kern.boottime", err)
		return time.Time{}, false
	}
	sec, nsec := tv.Unix()
	if sec <= 0 {
		return time.Time{}, false
	}
	return time.Unix(sec, nsec), true
}
