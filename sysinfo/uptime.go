package sysinfo

import (
	"strconv"
	"strings"
)

const procUptimePath = "/proc/uptime"

// Uptime returns the formatted time since boot, or Unknown.
func (d *Detector) Uptime() string {
	seconds, source, ok := d.uptimeSeconds()
	if !ok {
		d.missed("uptime", Unknown)
		return Unknown
	}
	uptime := FormatUptime(seconds)
	d.found("uptime", source, uptime)
	return uptime
}

func (d *Detector) uptimeSeconds() (int64, string, bool) {
	switch {
	case d.platform == Linux:
		if si, ok := d.probe.Sysinfo(); ok {
			return si.Uptime, "sysinfo", true
		}
	case d.platform.IsBSD():
		if boot, ok := d.probe.SysctlBootTime(); ok {
			return int64(d.probe.Now().Sub(boot).Seconds()), "kern.boottime", true
		}
	default:
		if secs, ok := parseProcUptime(d.probe.ReadFirstLine(procUptimePath)); ok {
			return secs, procUptimePath, true
		}
		if secs, ok := d.probe.HostUptime(); ok {
			return int64(secs), "gopsutil", true
		}
	}
	return 0, "", false
}

// parseProcUptime reads the first field of /proc/uptime ("12345.67 54321.00").
func parseProcUptime(line string) (int64, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || secs < 0 {
		return 0, false
	}
	return int64(secs), true
}
