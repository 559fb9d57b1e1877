package sysinfo

import (
	"bufio"
	"strconv"
	"strings"
)

const (
	procMeminfoPath = "/proc/meminfo"
	defaultPageSize = 4096
)

// Memory returns "<used> MB / <total> MB", or Unknown when no source
// reports a total.
func (d *Detector) Memory() string {
	used, total, source, ok := d.memoryMB()
	if !ok || total == 0 {
		d.missed("memory", Unknown)
		return Unknown
	}
	memory := FormatMemory(used, total)
	d.found("memory", source, memory)
	return memory
}

func (d *Detector) memoryMB() (used, total uint64, source string, ok bool) {
	switch {
	case d.platform == Linux:
		si, ok := d.probe.Sysinfo()
		if !ok {
			return 0, 0, "", false
		}
		unit := uint64(si.Unit)
		if unit == 0 {
			unit = 1
		}
		total = si.TotalRAM * unit / bytesPerMB
		used = subClamp(si.TotalRAM, si.FreeRAM+si.BufferRAM) * unit / bytesPerMB
		return used, total, "sysinfo", true

	case d.platform.IsBSD():
		physmem, ok := d.probe.SysctlUint("hw.physmem")
		if !ok {
			return 0, 0, "", false
		}
		pageSize, ok := d.probe.SysctlUint("hw.pagesize")
		if !ok || pageSize == 0 {
			pageSize = defaultPageSize
		}
		var pages uint64
		counted := false
		for _, name := range []string{
			"vm.stats.vm.v_free_count",
			"vm.stats.vm.v_inactive_count",
			"vm.stats.vm.v_cache_count",
		} {
			if n, ok := d.probe.SysctlUint(name); ok {
				pages += n
				counted = true
			}
		}
		// OpenBSD and NetBSD have no vm.stats counters.
		if !counted {
			if totalB, usedB, ok := d.probe.VirtualMemory(); ok {
				total, used = totalB/bytesPerMB, usedB/bytesPerMB
				return min(used, total), total, "gopsutil", true
			}
		}
		total = physmem / bytesPerMB
		available := pages * pageSize / bytesPerMB
		return subClamp(total, available), total, "sysctl", true

	default:
		if m, ok := parseMeminfo(d.probe.ReadFile(procMeminfoPath)); ok {
			usedKB := subClamp(m.total, m.free+m.buffers+m.cached)
			return usedKB / 1024, m.total / 1024, procMeminfoPath, true
		}
		if totalB, usedB, ok := d.probe.VirtualMemory(); ok {
			total = totalB / bytesPerMB
			used = usedB / bytesPerMB
			if used > total {
				used = total
			}
			return used, total, "gopsutil", true
		}
	}
	return 0, 0, "", false
}

// meminfo holds the /proc/meminfo fields used for the used-memory figure,
// all in kilobytes.
type meminfo struct {
	total, free, buffers, cached uint64
}

// parseMeminfo reads MemTotal, MemFree, Buffers and Cached. It reports ok
// only when MemTotal is present and non-zero.
func parseMeminfo(content string) (meminfo, bool) {
	var m meminfo
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		key, rest, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		value, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			continue
		}
		switch key {
		case "MemTotal":
			m.total = value
		case "MemFree":
			m.free = value
		case "Buffers":
			m.buffers = value
		case "Cached":
			m.cached = value
		}
	}
	return m, m.total > 0
}

// subClamp returns a-b, or 0 when b exceeds a.
func subClamp(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
