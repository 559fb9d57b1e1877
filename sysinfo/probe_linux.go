//go:build linux

package sysinfo

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

func (p *HostProber) Sysinfo() (SysinfoStats, bool) {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		p.miss("sysinfo", fmt.Errorf("sysinfo: %w", err))
		return SysinfoStats{}, false
	}
	p.log.Debug("probe", "syscall", "sysinfo", "ok", true)
	return SysinfoStats{
		Uptime:    int64(si.Uptime),
		TotalRAM:  uint64(si.Totalram),
		FreeRAM:   uint64(si.Freeram),
		BufferRAM: uint64(si.Bufferram),
		Unit:      uint32(si.Unit),
	}, true
}

// Linux facts come from /proc and sysinfo(2); there is no sysctl-by-name.

func (p *HostProber) Sysctl(string) (string, bool) { return "", false }
func (p *HostProber) SysctlUint(string) (uint64, bool) { return 0, false }
func (p *HostProber) SysctlBootTime() (time.Time, bool) { return time.Time{}, false }
